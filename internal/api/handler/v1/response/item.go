package response

type InitializeRetailDataResponse struct {
	Message    string `json:"message"`
	ItemsAdded int    `json:"items_added"`
}

type UpdateQuantityResponse struct {
	Message     string `json:"message"`
	NewQuantity int    `json:"new_quantity"`
}
