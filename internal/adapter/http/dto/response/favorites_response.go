package response

type FavoritesResponse struct {
	ProductIDs []string `json:"productIds"`
	Count      int      `json:"count"`
}

type FavoriteStatusResponse struct {
	ProductID  string `json:"productId"`
	IsFavorite bool   `json:"isFavorite"`
}
