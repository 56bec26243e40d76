package response

type RecentSearchesResponse struct {
	Searches []string `json:"searches"`
}
