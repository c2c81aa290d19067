package server

import (
	"bsky_bots/dal"
	"bsky_bots/logic"
	"bsky_bots/shared"
	"net/http"
)

type statusHandlerGroup struct {
	cfg    *shared.Config
	logger shared.ILogger
	farm   logic.IFarm
	repo   dal.IRepo
}

func NewStatusHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	farm logic.IFarm,
	repo dal.IRepo,
) IHandlerGroup {
	res := statusHandlerGroup{
		cfg:    cfg,
		logger: logger,
		farm:   farm,
		repo:   repo,
	}
	return &res
}

func (hg *statusHandlerGroup) Prefix() string {
	return "/status"
}

func (hg *statusHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/bots", func(w http.ResponseWriter, r *http.Request) { hg.getBots(w, r) }},
	}
}

func (hg *statusHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return emptyMW(next)
	}
}

type botStatusResp struct {
	logic.BotStatus
	Followers       int `json:"followers"`
	ConsentsPending int `json:"consentsPending"`
	ConsentsGranted int `json:"consentsGranted"`
}

func (hg *statusHandlerGroup) getBots(w http.ResponseWriter, r *http.Request) {

	var resp []botStatusResp
	for _, st := range hg.farm.Statuses() {
		item := botStatusResp{BotStatus: st}
		if st.ConsentEnabled {
			recs, err := hg.repo.GetConsentRecords(st.Username)
			if err != nil {
				hg.logger.Errorf("Failed to read consent records for %s: %v", st.Username, err)
				writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
				return
			}
			item.Followers = len(recs)
			for _, rec := range recs {
				if rec.ConsentDate.Valid {
					item.ConsentsGranted += 1
				} else {
					item.ConsentsPending += 1
				}
			}
		}
		resp = append(resp, item)
	}
	writeJsonResponse(hg.logger, w, resp)
}
