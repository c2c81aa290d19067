package logic

import (
	"github.com/prometheus/client_golang/prometheus"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks bsky_bots/logic IMetrics

type IMetrics interface {
	ServiceStarted()
	PostReceived()
	PostDiscarded()
	LikeSent()
	ReplySent()
	DmSent()
	ConsentGranted()
	StreamConnected()
	StreamDropped()
	PollTickFailed()
	TotalFollowers(bot string, count int)
}

type metrics struct {
	serviceStarted  prometheus.Counter
	postsReceived   prometheus.Counter
	postsDiscarded  prometheus.Counter
	likesSent       prometheus.Counter
	repliesSent     prometheus.Counter
	dmsSent         prometheus.Counter
	consentsGiven   prometheus.Counter
	streamConnects  prometheus.Counter
	streamDrops     prometheus.Counter
	pollTicksFailed prometheus.Counter
	totalFollowers  *prometheus.GaugeVec
}

func NewMetrics() IMetrics {

	res := metrics{}

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Incremented once when the service starts",
	})
	prometheus.Register(res.serviceStarted)

	res.postsReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_received",
		Help: "Number of raw frames received from the firehose",
	})
	prometheus.Register(res.postsReceived)

	res.postsDiscarded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_discarded",
		Help: "Number of frames discarded as malformed or non-creation events",
	})
	prometheus.Register(res.postsDiscarded)

	res.likesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "likes_sent",
		Help: "Number of likes published",
	})
	prometheus.Register(res.likesSent)

	res.repliesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "replies_sent",
		Help: "Number of replies published",
	})
	prometheus.Register(res.repliesSent)

	res.dmsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "consent_dms_sent",
		Help: "Number of consent question DMs sent",
	})
	prometheus.Register(res.dmsSent)

	res.consentsGiven = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "consents_granted",
		Help: "Number of followers who granted consent",
	})
	prometheus.Register(res.consentsGiven)

	res.streamConnects = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stream_connects",
		Help: "Number of times a firehose connection was established",
	})
	prometheus.Register(res.streamConnects)

	res.streamDrops = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stream_drops",
		Help: "Number of times a firehose connection was lost",
	})
	prometheus.Register(res.streamDrops)

	res.pollTicksFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "poll_ticks_failed",
		Help: "Number of poll ticks abandoned after follower fetch or storage errors",
	})
	prometheus.Register(res.pollTicksFailed)

	res.totalFollowers = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "total_followers",
		Help: "Number of followers per bot",
	}, []string{"bot"})
	prometheus.Register(res.totalFollowers)

	return &res
}

func (m *metrics) ServiceStarted()  { m.serviceStarted.Inc() }
func (m *metrics) PostReceived()    { m.postsReceived.Inc() }
func (m *metrics) PostDiscarded()   { m.postsDiscarded.Inc() }
func (m *metrics) LikeSent()        { m.likesSent.Inc() }
func (m *metrics) ReplySent()       { m.repliesSent.Inc() }
func (m *metrics) DmSent()          { m.dmsSent.Inc() }
func (m *metrics) ConsentGranted()  { m.consentsGiven.Inc() }
func (m *metrics) StreamConnected() { m.streamConnects.Inc() }
func (m *metrics) StreamDropped()   { m.streamDrops.Inc() }
func (m *metrics) PollTickFailed()  { m.pollTicksFailed.Inc() }

func (m *metrics) TotalFollowers(bot string, count int) {
	m.totalFollowers.WithLabelValues(bot).Set(float64(count))
}
