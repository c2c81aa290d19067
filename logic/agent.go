package logic

import (
	"bsky_bots/bsky"
	"bsky_bots/dal"
	"bsky_bots/feed"
	"bsky_bots/shared"
	"sync"
)

// BotAgent is one logged-in bot: its identity, its API client, and for bots
// running the consent workflow, its slice of the consent store. It holds no
// per-post state; concurrent evaluations are safe.
type BotAgent struct {
	bot     shared.BotConfig
	client  bsky.IClient
	repo    dal.IRepo // nil when the bot has no consent workflow
	logger  shared.ILogger
	metrics IMetrics
	rng     IRng
}

func NewBotAgent(
	bot shared.BotConfig,
	client bsky.IClient,
	repo dal.IRepo,
	logger shared.ILogger,
	metrics IMetrics,
	rng IRng,
) *BotAgent {
	return &BotAgent{
		bot:     bot,
		client:  client,
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		rng:     rng,
	}
}

// LikeAndReplyIfFollower decides whether to react to one post and, when all
// gates pass, likes it and replies with a randomly chosen configured message.
// The gates, in order: never our own post; a reply rule must match; the
// author must have granted consent, when the workflow is configured; the
// author must follow the bot.
func (agent *BotAgent) LikeAndReplyIfFollower(post *feed.Post) {

	if post.AuthorDid == agent.bot.Did {
		return
	}

	replies := FilterReplies(post.Text, agent.bot.Replies)
	if len(replies) < 1 {
		return
	}
	agent.logger.Debugf("Post %s matched a rule: %s", post.Uri,
		shared.TruncateWithEllipsis(post.Text, 80))

	if agent.bot.ConsentDm != nil {
		granted, err := agent.repo.HasConsentGranted(agent.bot.Username, post.AuthorDid)
		if err != nil {
			agent.logger.Errorf("Failed to read consent state for %s: %v", post.AuthorDid, err)
			return
		}
		if !granted {
			agent.logger.Infof("No consent given yet from %s (%s)", post.AuthorDid, agent.bot.Username)
			return
		}
	}

	followedBy, err := agent.client.IsFollowedBy(post.AuthorDid)
	if err != nil {
		agent.logger.Warnf("Relationship check failed for %s: %v", post.AuthorDid, err)
		return
	}
	if !followedBy {
		return
	}

	replyCfg := replies[agent.rng.Intn(len(replies))]
	message := replyCfg.Messages[agent.rng.Intn(len(replyCfg.Messages))]

	// Two independent side effects; neither rolls back the other
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := agent.client.Like(post.Uri, post.Cid); err != nil {
			agent.logger.Warnf("Failed to like %s: %v", post.Uri, err)
			return
		}
		agent.metrics.LikeSent()
	}()
	go func() {
		defer wg.Done()
		if err := agent.client.Reply(post, message); err != nil {
			agent.logger.Warnf("Failed to reply to %s: %v", post.Uri, err)
			return
		}
		agent.metrics.ReplySent()
	}()
	wg.Wait()

	agent.logger.Infof("Replied to post %s (%s)", post.Uri, agent.bot.Username)
}

// GetAllFollowers drains the paginated follower listing. Any page failing
// fails the whole fetch: a partial set never reaches the consent pass.
func (agent *BotAgent) GetAllFollowers() ([]string, error) {
	var followers []string
	cursor := ""
	for {
		page, next, err := agent.client.GetFollowers(cursor)
		if err != nil {
			return nil, err
		}
		followers = append(followers, page...)
		if next == "" {
			return followers, nil
		}
		cursor = next
	}
}

// HandleConsent reconciles the consent table against the live follower set,
// then advances the workflow for every follower without a granted consent:
// send the question DM if it has not gone out, or record the grant when the
// conversation's last inbound message equals the expected answer. The DM
// work fans out one goroutine per follower and joins before returning; one
// follower's failure never blocks the others.
func (agent *BotAgent) HandleConsent(dids []string) error {

	if err := agent.repo.ReconcileFollowers(agent.bot.Username, dids); err != nil {
		return err
	}
	if len(dids) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	for _, did := range dids {
		granted, err := agent.repo.HasConsentGranted(agent.bot.Username, did)
		if err != nil {
			wg.Wait()
			return err
		}
		if granted {
			continue
		}
		wg.Add(1)
		go func(did string) {
			defer wg.Done()
			agent.progressConsent(did)
		}(did)
	}
	wg.Wait()
	return nil
}

func (agent *BotAgent) progressConsent(did string) {

	convo, err := agent.client.GetConvoForMembers(did)
	if err != nil {
		agent.logger.Warnf("Failed to get convo with %s: %v", did, err)
		return
	}

	hasDm, err := agent.repo.HasDmSent(agent.bot.Username, did)
	if err != nil {
		agent.logger.Errorf("Failed to read DM state for %s: %v", did, err)
		return
	}

	if !hasDm {
		if err = agent.client.SendMessage(convo.Id, agent.bot.ConsentDm.ConsentQuestion); err != nil {
			agent.logger.Warnf("Failed to send consent DM to %s: %v", did, err)
			return
		}
		if err = agent.repo.MarkDmSent(agent.bot.Username, did); err != nil {
			agent.logger.Errorf("Failed to record DM sent for %s: %v", did, err)
			return
		}
		agent.metrics.DmSent()
		agent.logger.Infof("Consent DM sent to %s (%s)", did, agent.bot.Username)
	} else if convo.LastMessage != nil && convo.LastMessage.Text == agent.bot.ConsentDm.ConsentAnswer {
		if err = agent.repo.MarkConsentGranted(agent.bot.Username, did); err != nil {
			agent.logger.Errorf("Failed to record consent for %s: %v", did, err)
			return
		}
		agent.metrics.ConsentGranted()
		agent.logger.Infof("Consent granted by %s (%s)", did, agent.bot.Username)
	}
}
