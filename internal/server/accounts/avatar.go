package accounts

import (
	"fmt"

	"github.com/streamify-app/auth-server/internal/common"
)

// New accounts get a pseudo-random portrait from a fixed external hosting
// service. The template and variant count are part of the existing data
// shape: stored avatar URLs must keep resolving to the same host.
const (
	avatarURLTemplate = "https://avatar.iran.liara.run/public/%d.png"
	avatarVariants    = 100
)

// defaultAvatarURL picks a uniform variant in [1, avatarVariants] and renders
// the hosting URL for it.
func defaultAvatarURL() (string, error) {
	idx, err := common.RandomInt(avatarVariants)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(avatarURLTemplate, idx), nil
}
