package bsky

// Wire structs for the handful of XRPC lexicons the bots speak. Field names
// follow the lexicon JSON.

type createSessionInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type createSessionOutput struct {
	Did        string `json:"did"`
	Handle     string `json:"handle"`
	AccessJwt  string `json:"accessJwt"`
	RefreshJwt string `json:"refreshJwt"`
}

type getFollowersOutput struct {
	Cursor    *string        `json:"cursor"`
	Followers []followerView `json:"followers"`
}

type followerView struct {
	Did    string `json:"did"`
	Handle string `json:"handle"`
}

type getRelationshipsOutput struct {
	Actor         *string        `json:"actor"`
	Relationships []relationship `json:"relationships"`
}

// relationship: following/followedBy are at:// URIs of the follow records and
// empty when the edge does not exist.
type relationship struct {
	Did        string `json:"did"`
	Following  string `json:"following"`
	FollowedBy string `json:"followedBy"`
}

type createRecordInput struct {
	Repo       string      `json:"repo"`
	Collection string      `json:"collection"`
	Record     interface{} `json:"record"`
}

type likeRecord struct {
	Type      string    `json:"$type"`
	CreatedAt string    `json:"createdAt"`
	Subject   StrongRef `json:"subject"`
}

type postRecord struct {
	Type      string    `json:"$type"`
	Text      string    `json:"text"`
	CreatedAt string    `json:"createdAt"`
	Reply     *replyRef `json:"reply,omitempty"`
}

type replyRef struct {
	Root   StrongRef `json:"root"`
	Parent StrongRef `json:"parent"`
}

type StrongRef struct {
	Uri string `json:"uri"`
	Cid string `json:"cid"`
}

type getConvoForMembersOutput struct {
	Convo ConvoView `json:"convo"`
}

// ConvoView is the slice of chat.bsky.convo.defs#convoView we care about:
// the conversation id and the text of its most recent message.
type ConvoView struct {
	Id          string       `json:"id"`
	LastMessage *MessageView `json:"lastMessage"`
}

type MessageView struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

type sendMessageInput struct {
	ConvoId string          `json:"convoId"`
	Message sendMessageBody `json:"message"`
}

type sendMessageBody struct {
	Text string `json:"text"`
}

// xrpcError is the standard XRPC error response body.
type xrpcError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
