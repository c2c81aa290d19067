package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAtUri(t *testing.T) {
	assert.Equal(t, "at://did:plc:abc/app.bsky.feed.post/3l3qo2vu",
		AtUri("did:plc:abc", "app.bsky.feed.post", "3l3qo2vu"))
}

func TestSubscribeUrl(t *testing.T) {
	idb := IdBuilder{JetstreamHost: "jetstream1.us-east.bsky.network"}

	url := idb.Subscribe([]string{"app.bsky.feed.post"}, nil)
	assert.Equal(t, "wss://jetstream1.us-east.bsky.network/subscribe?wantedCollections=app.bsky.feed.post", url)

	url = idb.Subscribe([]string{"app.bsky.feed.post"}, []string{"did:plc:aaa", "did:plc:bbb"})
	assert.Equal(t,
		"wss://jetstream1.us-east.bsky.network/subscribe?wantedCollections=app.bsky.feed.post&wantedDids=did%3Aplc%3Aaaa&wantedDids=did%3Aplc%3Abbb",
		url)
}
