package cse

import "github.com/stylefinder/backend/internal/domain"

// searchResponse is the provider's top-level search result payload
type searchResponse struct {
	Items []searchItem `json:"items"`
}

// searchItem is one provider result. Image metadata lives either in the
// pagemap (text mode) or the image block (image mode).
type searchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	DisplayLink string `json:"displayLink"`
	Snippet     string `json:"snippet"`
	PageMap     struct {
		CSEImage []struct {
			Src string `json:"src"`
		} `json:"cse_image"`
	} `json:"pagemap"`
	Image struct {
		ThumbnailLink string `json:"thumbnailLink"`
	} `json:"image"`
}

// mapItems converts provider items to domain raw result items
func mapItems(items []searchItem) []domain.RawResultItem {
	mapped := make([]domain.RawResultItem, 0, len(items))
	for _, item := range items {
		mapped = append(mapped, mapItem(item))
	}
	return mapped
}

// mapItem converts a single provider item, resolving the image URL from
// whichever metadata block is present.
func mapItem(item searchItem) domain.RawResultItem {
	imageURL := ""
	if len(item.PageMap.CSEImage) > 0 {
		imageURL = item.PageMap.CSEImage[0].Src
	} else if item.Image.ThumbnailLink != "" {
		imageURL = item.Image.ThumbnailLink
	}

	return domain.RawResultItem{
		Title:       item.Title,
		Link:        item.Link,
		DisplayLink: item.DisplayLink,
		Snippet:     item.Snippet,
		ImageURL:    imageURL,
	}
}
