package logic

import (
	"bsky_bots/feed"
	"bsky_bots/shared"
	"time"
)

// consentPoller is the periodic driver of one consent bot: each tick it
// refreshes the follower set, runs the consent pass, and pushes the fresh
// author allow-list into the bot's firehose subscription. Stopping is tied
// to the bot's lifetime, not to the process.
type consentPoller struct {
	agent    *BotAgent
	sub      feed.IJetstream
	logger   shared.ILogger
	metrics  IMetrics
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func newConsentPoller(
	agent *BotAgent,
	sub feed.IJetstream,
	logger shared.ILogger,
	metrics IMetrics,
	interval time.Duration,
) *consentPoller {
	return &consentPoller{
		agent:    agent,
		sub:      sub,
		logger:   logger,
		metrics:  metrics,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (p *consentPoller) Start() {
	go p.loop()
}

// Stop cancels the timer and waits for a tick in flight to finish.
func (p *consentPoller) Stop() {
	close(p.stop)
	<-p.done
}

func (p *consentPoller) loop() {
	defer close(p.done)
	p.tick()
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			p.tick()
		case <-p.stop:
			return
		}
	}
}

func (p *consentPoller) tick() {

	bot := p.agent.bot.Username

	followers, err := p.agent.GetAllFollowers()
	if err != nil {
		// Transient API trouble: skip this tick, the next one retries
		p.logger.Warnf("Failed to fetch followers for %s: %v", bot, err)
		p.metrics.PollTickFailed()
		return
	}
	p.metrics.TotalFollowers(bot, len(followers))

	if err = p.agent.HandleConsent(followers); err != nil {
		p.logger.Errorf("Consent pass failed for %s: %v", bot, err)
		p.metrics.PollTickFailed()
		return
	}

	p.sub.UpdateFilter(followers)
}
