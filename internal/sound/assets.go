package sound

import "strings"

// DefaultDir is where cue files are looked up, relative to the working directory.
const DefaultDir = "assets/sounds"

// Supported reports whether ext names a decodable sound format.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".mp3", ".wav":
		return true
	}
	return false
}
