package logic

import (
	"bsky_bots/shared"
	"strings"
)

// FilterReplies returns the rules that want to react to the given post text:
// the keyword must occur as a case-insensitive substring, and none of the
// rule's exclude terms may occur.
func FilterReplies(text string, rules []shared.ReplyRule) []shared.ReplyRule {
	lower := strings.ToLower(text)
	var res []shared.ReplyRule
	for _, rule := range rules {
		if !strings.Contains(lower, strings.ToLower(rule.Keyword)) {
			continue
		}
		vetoed := false
		for _, excl := range rule.Exclude {
			if strings.Contains(lower, strings.ToLower(excl)) {
				vetoed = true
				break
			}
		}
		if !vetoed {
			res = append(res, rule)
		}
	}
	return res
}
