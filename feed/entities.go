package feed

// Post is one normalized creation event from the firehose. Constructed only
// by RawToPost; immutable afterwards. When the post is not a reply, RootUri
// and RootCid point back at the post itself.
type Post struct {
	Uri       string
	Cid       string
	AuthorDid string
	Text      string
	RootUri   string
	RootCid   string
}

// jetstreamEvent is the raw JSON structure from Jetstream.
type jetstreamEvent struct {
	Did    string           `json:"did"`
	TimeUS int64            `json:"time_us"`
	Kind   string           `json:"kind"`
	Commit *jetstreamCommit `json:"commit,omitempty"`
}

// jetstreamCommit is the raw commit data from Jetstream.
type jetstreamCommit struct {
	Rev        string      `json:"rev"`
	Operation  string      `json:"operation"`
	Collection string      `json:"collection"`
	RKey       string      `json:"rkey"`
	Record     *postRecord `json:"record,omitempty"`
	Cid        string      `json:"cid"`
}

// postRecord is the parsed content of an app.bsky.feed.post record.
type postRecord struct {
	Type      string    `json:"$type"`
	CreatedAt string    `json:"createdAt"`
	Text      string    `json:"text"`
	Reply     *replyRef `json:"reply,omitempty"`
}

// replyRef contains references to the parent and root of a reply chain.
type replyRef struct {
	Root   strongRef `json:"root"`
	Parent strongRef `json:"parent"`
}

// strongRef is a reference to a specific version of a record.
type strongRef struct {
	Uri string `json:"uri"`
	Cid string `json:"cid"`
}

// optionsUpdateFrame is the control message that narrows or widens a live
// subscription without reconnecting.
type optionsUpdateFrame struct {
	Type    string               `json:"type"`
	Payload optionsUpdatePayload `json:"payload"`
}

type optionsUpdatePayload struct {
	WantedCollections []string `json:"wantedCollections"`
	WantedDids        []string `json:"wantedDids"`
}
