package feed

import (
	"bsky_bots/shared"
	"encoding/json"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_jetstream.go -package mocks bsky_bots/feed IJetstream

const PostCollection = "app.bsky.feed.post"

// IJetstream is one bot-facing subscription to the firehose. Connect opens an
// unfiltered (collections-only) stream; UpdateFilter narrows the stream to an
// author allow-list, either at connect time via the endpoint URL or, on a
// live connection, with a single options_update control frame.
type IJetstream interface {
	Connect()
	UpdateFilter(dids []string)
	Connected() bool
	Close(permanent bool)
}

type jetstream struct {
	cfg         *shared.Config
	logger      shared.ILogger
	cb          WsCallbacks
	collections []string
	idb         shared.IdBuilder

	mu     sync.Mutex
	client *WsClient
}

func NewJetstream(cfg *shared.Config, logger shared.ILogger, cb WsCallbacks) IJetstream {
	return &jetstream{
		cfg:         cfg,
		logger:      logger,
		cb:          cb,
		collections: []string{PostCollection},
		idb:         shared.IdBuilder{JetstreamHost: cfg.JetstreamHost},
	}
}

func (js *jetstream) Connect() {
	js.mu.Lock()
	defer js.mu.Unlock()
	if js.client != nil {
		js.client.Connect()
		return
	}
	js.connectLocked(nil)
}

func (js *jetstream) UpdateFilter(dids []string) {
	js.mu.Lock()
	defer js.mu.Unlock()

	// Zero followers: a subscription without wantedDids would stream every
	// post on the network. Tear down instead, for good.
	if len(dids) == 0 {
		if js.client != nil {
			js.logger.Infof("Author allow-list is empty; closing subscription")
			js.client.Close(true)
			js.client = nil
		}
		return
	}

	if js.client != nil && js.client.Connected() {
		frame := optionsUpdateFrame{
			Type: "options_update",
			Payload: optionsUpdatePayload{
				WantedCollections: js.collections,
				WantedDids:        dids,
			},
		}
		data, err := json.Marshal(&frame)
		if err != nil {
			js.logger.Errorf("Failed to serialize options_update frame: %v", err)
			return
		}
		js.client.Send(data)
		return
	}

	// Not connected yet (or a stale client is mid-reconnect): start over with
	// the filter baked into the endpoint URL.
	if js.client != nil {
		js.client.Close(true)
	}
	js.connectLocked(dids)
}

func (js *jetstream) connectLocked(dids []string) {
	url := js.idb.Subscribe(js.collections, dids)
	js.logger.Infof("Subscribing to %s", js.cfg.JetstreamHost)
	js.client = NewWsClient(
		url,
		time.Duration(js.cfg.ReconnectIntervalSec)*time.Second,
		time.Duration(js.cfg.PingIntervalSec)*time.Second,
		js.cb,
		js.logger,
	)
	js.client.Connect()
}

func (js *jetstream) Connected() bool {
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.client != nil && js.client.Connected()
}

func (js *jetstream) Close(permanent bool) {
	js.mu.Lock()
	defer js.mu.Unlock()
	if js.client != nil {
		js.client.Close(permanent)
	}
}
