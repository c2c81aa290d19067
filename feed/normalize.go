package feed

import (
	"bsky_bots/shared"
	"encoding/json"
)

// RawToPost converts one raw Jetstream frame into a Post. Anything that is
// not a well-formed creation event yields nil; malformed input is a no-op,
// never an error.
func RawToPost(data []byte) *Post {
	var evt jetstreamEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil
	}
	if evt.Commit == nil || evt.Commit.Operation != "create" {
		return nil
	}
	commit := evt.Commit
	if evt.Did == "" || commit.Cid == "" || commit.RKey == "" {
		return nil
	}
	if commit.Record == nil || commit.Record.Type == "" || commit.Record.Text == "" {
		return nil
	}

	uri := shared.AtUri(evt.Did, commit.Record.Type, commit.RKey)
	post := Post{
		Uri:       uri,
		Cid:       commit.Cid,
		AuthorDid: evt.Did,
		Text:      commit.Record.Text,
		// A post is its own root when it is not a reply
		RootUri: uri,
		RootCid: commit.Cid,
	}
	if commit.Record.Reply != nil {
		post.RootUri = commit.Record.Reply.Root.Uri
		post.RootCid = commit.Record.Reply.Root.Cid
	}
	return &post
}
