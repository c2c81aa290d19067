package shared

import (
	"fmt"
	"net/http"
)

const serviceVersion = "1.0.2"
const userAgentTemplate = "BskyBotFarm/%s"

type IUserAgent interface {
	AddUserAgent(req *http.Request)
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent() IUserAgent {
	return &userAgent{
		userAgentValue: fmt.Sprintf(userAgentTemplate, serviceVersion),
	}
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Add("User-Agent", ua.userAgentValue)
}
