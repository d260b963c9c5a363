package types

// FeedResponse 分页信息流响应
type FeedResponse struct {
	Items      []*ArticleItem `json:"items"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int64          `json:"total"`
}
