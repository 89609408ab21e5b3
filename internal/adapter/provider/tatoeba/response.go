package tatoeba

// searchResponse is the Tatoeba search payload. Only the fields the backfill
// needs are mapped; paging and translation groups are ignored.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID     int64      `json:"id"`
	Text   string     `json:"text"`
	Lang   string     `json:"lang"`
	Audios []struct { //nolint:revive // shape dictated by the API
		ID int64 `json:"id"`
	} `json:"audios"`
}
