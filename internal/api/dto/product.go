package dto

type RandomListResponse struct {
	Items []string `json:"items"`
}

type LocateResponse struct {
	Query    string           `json:"query"`
	Category string           `json:"category"`
	Location LocationResponse `json:"location"`
}
