package logic

import (
	"bsky_bots/bsky"
	"bsky_bots/dal"
	"bsky_bots/feed"
	"bsky_bots/shared"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_farm.go -package mocks bsky_bots/logic IFarm

// IFarm assembles and runs the configured bots: one logged-in agent and one
// firehose subscription per bot, plus a consent poller for the bots that
// gate replies behind the opt-in workflow.
type IFarm interface {
	Start() error
	Stop()
	Statuses() []BotStatus
}

// BotStatus is the read-only summary surfaced on the ops endpoint.
type BotStatus struct {
	Username       string `json:"username"`
	Did            string `json:"did"`
	ConsentEnabled bool   `json:"consentEnabled"`
	Connected      bool   `json:"connected"`
}

type agentRuntime struct {
	agent  *BotAgent
	sub    feed.IJetstream
	poller *consentPoller // nil for reply-only bots
}

type farm struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   IMetrics
	repo      dal.IRepo
	newClient bsky.NewClientFunc
	rng       IRng

	mu     sync.Mutex
	agents []*agentRuntime
}

func NewFarm(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics IMetrics,
	repo dal.IRepo,
	newClient bsky.NewClientFunc,
	rng IRng,
) IFarm {
	return &farm{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		repo:      repo,
		newClient: newClient,
		rng:       rng,
	}
}

// Start logs in every configured bot and brings up its stream. A bot that
// cannot log in is excluded and logged; it never takes the farm down.
func (f *farm) Start() error {

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, bot := range f.cfg.Bots {
		password := f.cfg.Secrets.AppPasswords[bot.Username]
		if password == "" {
			f.logger.Errorf("No app password configured for %s; skipping bot", bot.Username)
			continue
		}

		client := f.newClient(bot, password)
		if err := client.Login(); err != nil {
			f.logger.Errorf("Failed to initialize bot %s: %v", bot.Username, err)
			continue
		}

		var repo dal.IRepo
		if bot.ConsentDm != nil {
			repo = f.repo
		}
		agent := NewBotAgent(bot, client, repo, f.logger, f.metrics, f.rng)

		sub := feed.NewJetstream(f.cfg, f.logger, feed.WsCallbacks{
			OnOpen:    f.metrics.StreamConnected,
			OnClose:   f.metrics.StreamDropped,
			OnMessage: func(data []byte) { f.dispatch(agent, data) },
		})

		rt := &agentRuntime{agent: agent, sub: sub}
		if bot.ConsentDm != nil {
			// The poller's first tick narrows the stream to the follower set
			rt.poller = newConsentPoller(agent, sub, f.logger, f.metrics,
				time.Duration(f.cfg.PollIntervalSec)*time.Second)
			rt.poller.Start()
		} else {
			// Reply-only bots listen to the whole post stream
			sub.Connect()
		}
		f.agents = append(f.agents, rt)
		f.logger.Infof("Bot %s is up", bot.Username)
	}

	if len(f.agents) == 0 {
		f.logger.Warnf("No bots came up; the farm is idle")
	}
	return nil
}

// dispatch runs for every raw frame of one bot's subscription, in arrival
// order.
func (f *farm) dispatch(agent *BotAgent, data []byte) {
	f.metrics.PostReceived()
	post := feed.RawToPost(data)
	if post == nil {
		f.metrics.PostDiscarded()
		return
	}
	agent.LikeAndReplyIfFollower(post)
}

// Stop ends all pollers and closes all subscriptions for good, so shutdown
// does not race pointless reconnect attempts.
func (f *farm) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rt := range f.agents {
		if rt.poller != nil {
			rt.poller.Stop()
		}
		rt.sub.Close(true)
	}
	f.agents = nil
}

func (f *farm) Statuses() []BotStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]BotStatus, 0, len(f.agents))
	for _, rt := range f.agents {
		res = append(res, BotStatus{
			Username:       rt.agent.bot.Username,
			Did:            rt.agent.bot.Did,
			ConsentEnabled: rt.agent.bot.ConsentDm != nil,
			Connected:      rt.sub.Connected(),
		})
	}
	return res
}
