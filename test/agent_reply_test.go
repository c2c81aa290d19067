package test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"bsky_bots/feed"
	"bsky_bots/logic"
	"bsky_bots/shared"
	"bsky_bots/test/mocks"
)

const (
	botDid      = "did:plc:bot4elvkxhyyubjcl2zrl4cb"
	followerDid = "did:plc:fan4elvkxhyyubjcl2zrl4cb"
)

type agentHarness struct {
	bot         shared.BotConfig
	mockClient  *mocks.MockIClient
	mockRepo    *mocks.MockIRepo
	mockLogger  *mocks.MockILogger
	mockMetrics *mocks.MockIMetrics
	rng         *fixedRng
}

func setupAgentTest(t *testing.T, bot shared.BotConfig) (*gomock.Controller, *agentHarness, *logic.BotAgent) {

	ctrl := gomock.NewController(t)

	h := &agentHarness{
		bot:         bot,
		mockClient:  mocks.NewMockIClient(ctrl),
		mockRepo:    mocks.NewMockIRepo(ctrl),
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		rng:         &fixedRng{},
	}
	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)

	agent := logic.NewBotAgent(bot, h.mockClient, h.mockRepo, h.mockLogger, h.mockMetrics, h.rng)

	return ctrl, h, agent
}

func replyBot() shared.BotConfig {
	return shared.BotConfig{
		Username: "birb.example.com",
		Did:      botDid,
		Replies: []shared.ReplyRule{
			{
				Keyword:  "gopher",
				Messages: []string{"Nice gopher!"},
			},
			{
				Keyword:  "marmot",
				Exclude:  []string{"plushie"},
				Messages: []string{"A fine marmot.", "Marmots rule."},
			},
		},
	}
}

func consentBot() shared.BotConfig {
	bot := replyBot()
	bot.ConsentDm = &shared.ConsentDm{
		ConsentQuestion: "May I reply to your posts? Answer YES to opt in.",
		ConsentAnswer:   "YES",
	}
	return bot
}

func makePost(authorDid, text string) *feed.Post {
	return &feed.Post{
		Uri:       "at://" + authorDid + "/app.bsky.feed.post/3k44aaaabbbcc",
		Cid:       "bafyreita3kkkkllllmmmmnnnnoooo",
		AuthorDid: authorDid,
		Text:      text,
		RootUri:   "at://" + authorDid + "/app.bsky.feed.post/3k44aaaabbbcc",
		RootCid:   "bafyreita3kkkkllllmmmmnnnnoooo",
	}
}

func Test_Agent_Ignores_Own_Post(t *testing.T) {

	ctrl, _, agent := setupAgentTest(t, replyBot())
	defer ctrl.Finish()

	// No client or repo expectations: any call fails the test
	agent.LikeAndReplyIfFollower(makePost(botDid, "I saw a gopher today"))
}

func Test_Agent_Ignores_Post_Without_Keyword(t *testing.T) {

	ctrl, _, agent := setupAgentTest(t, replyBot())
	defer ctrl.Finish()

	agent.LikeAndReplyIfFollower(makePost(followerDid, "Nothing to see here"))
}

func Test_Agent_Holds_Back_Without_Consent(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	h.mockRepo.EXPECT().HasConsentGranted("birb.example.com", followerDid).Return(false, nil)

	agent.LikeAndReplyIfFollower(makePost(followerDid, "I saw a gopher today"))
}

func Test_Agent_Holds_Back_On_Consent_Read_Failure(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	h.mockRepo.EXPECT().HasConsentGranted("birb.example.com", followerDid).
		Return(false, errors.New("database is locked"))

	agent.LikeAndReplyIfFollower(makePost(followerDid, "I saw a gopher today"))
}

func Test_Agent_Requires_Follow_Back(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, replyBot())
	defer ctrl.Finish()

	h.mockClient.EXPECT().IsFollowedBy(followerDid).Return(false, nil)

	agent.LikeAndReplyIfFollower(makePost(followerDid, "I saw a gopher today"))
}

func Test_Agent_Likes_And_Replies(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, replyBot())
	defer ctrl.Finish()
	h.rng.vals = []int{0, 1}

	post := makePost(followerDid, "marmot spotting season")

	h.mockClient.EXPECT().IsFollowedBy(followerDid).Return(true, nil)
	h.mockClient.EXPECT().Like(post.Uri, post.Cid).Return(nil)
	h.mockClient.EXPECT().Reply(post, "Marmots rule.").Return(nil)
	h.mockMetrics.EXPECT().LikeSent()
	h.mockMetrics.EXPECT().ReplySent()

	agent.LikeAndReplyIfFollower(post)
}

func Test_Agent_Consented_Follower_Gets_Reply(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, consentBot())
	defer ctrl.Finish()

	post := makePost(followerDid, "I saw a gopher today")

	h.mockRepo.EXPECT().HasConsentGranted("birb.example.com", followerDid).Return(true, nil)
	h.mockClient.EXPECT().IsFollowedBy(followerDid).Return(true, nil)
	h.mockClient.EXPECT().Like(post.Uri, post.Cid).Return(nil)
	h.mockClient.EXPECT().Reply(post, "Nice gopher!").Return(nil)
	h.mockMetrics.EXPECT().LikeSent()
	h.mockMetrics.EXPECT().ReplySent()

	agent.LikeAndReplyIfFollower(post)
}

func Test_Agent_Reply_Failure_Does_Not_Block_Like(t *testing.T) {

	ctrl, h, agent := setupAgentTest(t, replyBot())
	defer ctrl.Finish()

	post := makePost(followerDid, "I saw a gopher today")

	h.mockClient.EXPECT().IsFollowedBy(followerDid).Return(true, nil)
	h.mockClient.EXPECT().Like(post.Uri, post.Cid).Return(nil)
	h.mockClient.EXPECT().Reply(post, "Nice gopher!").Return(errors.New("HTTP 502"))
	h.mockMetrics.EXPECT().LikeSent()

	agent.LikeAndReplyIfFollower(post)
}
