package tmdb

import "strings"

// ImageSize is a TMDB image width token
type ImageSize string

const (
	ImageSizeSmall    ImageSize = "w92"
	ImageSizeMedium   ImageSize = "w185"
	ImageSizeLarge    ImageSize = "w500"
	ImageSizeOriginal ImageSize = "original"
)

// DefaultImageBaseURL is the public TMDB image CDN
const DefaultImageBaseURL = "https://image.tmdb.org/t/p"

// PlaceholderImage is returned for movies without artwork
const PlaceholderImage = "/placeholder-image.jpg"

// ImageURL builds an absolute image URL for a relative TMDB path.
// An empty path yields PlaceholderImage.
func ImageURL(baseURL, path string, size ImageSize) string {
	if path == "" {
		return PlaceholderImage
	}
	if size == "" {
		size = ImageSizeLarge
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(baseURL, "/") + "/" + string(size) + path
}
