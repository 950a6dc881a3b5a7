package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// AvatarPalette lists the avatar colors offered in the lobby, in the order new
// players receive them.
var AvatarPalette = []string{
	"#ef4444", // Kamaki Red
	"#3b82f6", // Tourist Blue
	"#1f2937", // Yiayia Black
	"#65a30d", // Olive Green
	"#f3f4f6", // Ferry White
}

// DefaultAvatar returns the palette color for the n-th player (0-indexed).
func DefaultAvatar(n int) string {
	if n < 0 {
		n = 0
	}
	return AvatarPalette[n%len(AvatarPalette)]
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// AvatarColor maps an avatar tag to a terminal color. Tags that are not hex
// colors fall back to white, since avatars are opaque to the game rules.
func AvatarColor(tag string) tcell.Color {
	color, err := ParseHexColor(tag)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}
