package bsky

import (
	"bsky_bots/feed"
	"bsky_bots/shared"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_client.go -package mocks bsky_bots/bsky IClient

const requestTimeoutSec = 10
const followersPageSize = 100

// IClient is one bot's authenticated surface to the network: session,
// follower graph, like/reply side effects, and the consent DM conversation.
type IClient interface {
	Login() error
	Did() string
	GetFollowers(cursor string) (dids []string, next string, err error)
	IsFollowedBy(did string) (bool, error)
	Like(uri, cid string) error
	Reply(post *feed.Post, text string) error
	GetConvoForMembers(did string) (*ConvoView, error)
	SendMessage(convoId, text string) error
}

// NewClientFunc creates a client for one bot identity. The farm gets this
// injected so tests can substitute mocks per bot.
type NewClientFunc func(bot shared.BotConfig, password string) IClient

type client struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	http      *retryablehttp.Client
	bot       shared.BotConfig
	password  string
	accessJwt string
}

func NewClientFactory(cfg *shared.Config, logger shared.ILogger, userAgent shared.IUserAgent) NewClientFunc {
	return func(bot shared.BotConfig, password string) IClient {
		rc := retryablehttp.NewClient()
		rc.RetryMax = int(cfg.FollowerFetchRetries)
		rc.Logger = nil
		rc.HTTPClient.Timeout = time.Second * requestTimeoutSec
		return &client{
			cfg:       cfg,
			logger:    logger,
			userAgent: userAgent,
			http:      rc,
			bot:       bot,
			password:  password,
		}
	}
}

func (c *client) Did() string {
	return c.bot.Did
}

func (c *client) Login() error {
	input := createSessionInput{Identifier: c.bot.Username, Password: c.password}
	var out createSessionOutput
	if err := c.procedure(c.cfg.PdsHost, "com.atproto.server.createSession", &input, &out); err != nil {
		return fmt.Errorf("login failed for %s: %w", c.bot.Username, err)
	}
	c.accessJwt = out.AccessJwt
	return nil
}

// GetFollowers fetches one page of the bot's followers. An empty next cursor
// means the listing is drained.
func (c *client) GetFollowers(cursor string) (dids []string, next string, err error) {
	params := url.Values{}
	params.Set("actor", c.bot.Did)
	params.Set("limit", strconv.Itoa(followersPageSize))
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	var out getFollowersOutput
	if err = c.query(c.cfg.PdsHost, "app.bsky.graph.getFollowers", params, &out); err != nil {
		return nil, "", err
	}
	for _, f := range out.Followers {
		dids = append(dids, f.Did)
	}
	if out.Cursor != nil {
		next = *out.Cursor
	}
	return dids, next, nil
}

func (c *client) IsFollowedBy(did string) (bool, error) {
	params := url.Values{}
	params.Set("actor", c.bot.Did)
	params.Add("others", did)
	var out getRelationshipsOutput
	if err := c.query(c.cfg.PublicApiHost, "app.bsky.graph.getRelationships", params, &out); err != nil {
		return false, err
	}
	if len(out.Relationships) == 0 {
		return false, nil
	}
	return out.Relationships[0].FollowedBy != "", nil
}

func (c *client) Like(uri, cid string) error {
	input := createRecordInput{
		Repo:       c.bot.Did,
		Collection: "app.bsky.feed.like",
		Record: &likeRecord{
			Type:      "app.bsky.feed.like",
			CreatedAt: nowIso(),
			Subject:   StrongRef{Uri: uri, Cid: cid},
		},
	}
	return c.procedure(c.cfg.PdsHost, "com.atproto.repo.createRecord", &input, nil)
}

// Reply publishes a reply citing the post's thread root and the post itself
// as immediate parent.
func (c *client) Reply(post *feed.Post, text string) error {
	input := createRecordInput{
		Repo:       c.bot.Did,
		Collection: "app.bsky.feed.post",
		Record: &postRecord{
			Type:      "app.bsky.feed.post",
			Text:      text,
			CreatedAt: nowIso(),
			Reply: &replyRef{
				Root:   StrongRef{Uri: post.RootUri, Cid: post.RootCid},
				Parent: StrongRef{Uri: post.Uri, Cid: post.Cid},
			},
		},
	}
	return c.procedure(c.cfg.PdsHost, "com.atproto.repo.createRecord", &input, nil)
}

func (c *client) GetConvoForMembers(did string) (*ConvoView, error) {
	params := url.Values{}
	params.Add("members", c.bot.Did)
	params.Add("members", did)
	var out getConvoForMembersOutput
	if err := c.query(c.cfg.ChatHost, "chat.bsky.convo.getConvoForMembers", params, &out); err != nil {
		return nil, err
	}
	return &out.Convo, nil
}

func (c *client) SendMessage(convoId, text string) error {
	input := sendMessageInput{ConvoId: convoId, Message: sendMessageBody{Text: text}}
	return c.procedure(c.cfg.ChatHost, "chat.bsky.convo.sendMessage", &input, nil)
}

func (c *client) query(host, nsid string, params url.Values, out interface{}) error {
	urlStr := shared.XrpcUrl(host, nsid)
	if len(params) != 0 {
		urlStr += "?" + params.Encode()
	}
	req, err := retryablehttp.NewRequest("GET", urlStr, nil)
	if err != nil {
		return err
	}
	return c.do(req, nsid, out)
}

func (c *client) procedure(host, nsid string, body, out interface{}) error {
	bodyJson, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := retryablehttp.NewRequest("POST", shared.XrpcUrl(host, nsid), bytes.NewReader(bodyJson))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nsid, out)
}

func (c *client) do(req *retryablehttp.Request, nsid string, out interface{}) error {
	c.userAgent.AddUserAgent(req.Request)
	if c.accessJwt != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessJwt)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var xerr xrpcError
		if json.Unmarshal(bodyBytes, &xerr) == nil && xerr.Error != "" {
			return fmt.Errorf("%s: status %d: %s: %s", nsid, resp.StatusCode, xerr.Error, xerr.Message)
		}
		return fmt.Errorf("%s: status %d", nsid, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(bodyBytes, out)
}

func nowIso() string {
	return time.Now().UTC().Format(time.RFC3339)
}
