package moderation

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"modbot/pkg/platform/sentinel"
)

// invitePattern matches invite-style URLs to guilds, including the common
// link-shortener domains. Case-insensitive.
const invitePattern = `(?i)(https?://)?(www\.)?(discord\.(gg|io|me|li)|discordapp\.com/invite)/\S*[a-z0-9]`

// InviteMatcher finds invite links in message content under a hard time
// bound. The compiled pattern is read-only after construction and safe for
// concurrent use.
type InviteMatcher struct {
	re      *regexp.Regexp
	timeout time.Duration
}

// NewInviteMatcher compiles the invite pattern with the given match timeout.
func NewInviteMatcher(timeout time.Duration) *InviteMatcher {
	return &InviteMatcher{
		re:      regexp.MustCompile(invitePattern),
		timeout: timeout,
	}
}

// Match returns every invite URL found in content. The match runs under the
// configured hard timeout so pathological input cannot stall the pipeline;
// on expiry it returns sentinel.ErrTimeout.
func (m *InviteMatcher) Match(ctx context.Context, content string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	if ctx.Err() != nil {
		return nil, fmt.Errorf("invite match: %w", sentinel.ErrTimeout)
	}

	done := make(chan []string, 1)
	go func() {
		done <- m.re.FindAllString(content, -1)
	}()

	select {
	case matches := <-done:
		return matches, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("invite match: %w", sentinel.ErrTimeout)
	}
}

// subtract returns the members of matches that do not appear in exclusions,
// preserving order.
func subtract(matches, exclusions []string) []string {
	excluded := make(map[string]struct{}, len(exclusions))
	for _, e := range exclusions {
		excluded[e] = struct{}{}
	}
	var out []string
	for _, m := range matches {
		if _, ok := excluded[m]; !ok {
			out = append(out, m)
		}
	}
	return out
}
