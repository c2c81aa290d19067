package feed

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

const createFrame = `{
	"did": "did:plc:author",
	"time_us": 1725900000000000,
	"kind": "commit",
	"commit": {
		"rev": "3l3qo2vutkk2l",
		"operation": "create",
		"collection": "app.bsky.feed.post",
		"rkey": "3l3qo2vuowo2b",
		"record": {
			"$type": "app.bsky.feed.post",
			"createdAt": "2026-08-28T10:00:00.000Z",
			"text": "hi"
		},
		"cid": "bafyreig6cid"
	}
}`

const replyFrame = `{
	"did": "did:plc:author",
	"time_us": 1725900000000000,
	"kind": "commit",
	"commit": {
		"rev": "3l3qo2vutkk2l",
		"operation": "create",
		"collection": "app.bsky.feed.post",
		"rkey": "3l3qo2vuowo2b",
		"record": {
			"$type": "app.bsky.feed.post",
			"createdAt": "2026-08-28T10:00:00.000Z",
			"text": "hi back",
			"reply": {
				"root": {"uri": "at://did:plc:other/app.bsky.feed.post/root1", "cid": "bafyroot"},
				"parent": {"uri": "at://did:plc:other/app.bsky.feed.post/parent1", "cid": "bafyparent"}
			}
		},
		"cid": "bafyreig6cid"
	}
}`

func TestRawToPost_Create(t *testing.T) {
	post := RawToPost([]byte(createFrame))
	require.NotNil(t, post)
	assert.Equal(t, "at://did:plc:author/app.bsky.feed.post/3l3qo2vuowo2b", post.Uri)
	assert.Equal(t, "bafyreig6cid", post.Cid)
	assert.Equal(t, "did:plc:author", post.AuthorDid)
	assert.Equal(t, "hi", post.Text)
	// Not a reply: the post is its own root
	assert.Equal(t, post.Uri, post.RootUri)
	assert.Equal(t, post.Cid, post.RootCid)
}

func TestRawToPost_Reply(t *testing.T) {
	post := RawToPost([]byte(replyFrame))
	require.NotNil(t, post)
	assert.Equal(t, "at://did:plc:other/app.bsky.feed.post/root1", post.RootUri)
	assert.Equal(t, "bafyroot", post.RootCid)
}

func TestRawToPost_Rejects(t *testing.T) {
	mangle := func(from, to string) []byte {
		return []byte(replaceOnce(createFrame, from, to))
	}

	// Not valid JSON at all
	assert.Nil(t, RawToPost([]byte("{nope")))
	// Non-create operations
	assert.Nil(t, RawToPost(mangle(`"operation": "create"`, `"operation": "delete"`)))
	assert.Nil(t, RawToPost(mangle(`"operation": "create"`, `"operation": "update"`)))
	// Missing required fields
	assert.Nil(t, RawToPost(mangle(`"did": "did:plc:author",`, `"did": "",`)))
	assert.Nil(t, RawToPost(mangle(`"cid": "bafyreig6cid"`, `"cid": ""`)))
	assert.Nil(t, RawToPost(mangle(`"rkey": "3l3qo2vuowo2b",`, ``)))
	assert.Nil(t, RawToPost(mangle(`"$type": "app.bsky.feed.post",`, ``)))
	assert.Nil(t, RawToPost(mangle(`"text": "hi"`, `"text": ""`)))
	// No commit member (e.g. identity or account events)
	assert.Nil(t, RawToPost([]byte(`{"did": "did:plc:author", "kind": "identity"}`)))
}

func replaceOnce(s, from, to string) string {
	for i := 0; i+len(from) <= len(s); i++ {
		if s[i:i+len(from)] == from {
			return s[:i] + to + s[i+len(from):]
		}
	}
	return s
}
