// internal/mockapi/seed.go
package mockapi

import "time"

// SeedProducts loads a small development catalog. Names carry
// diacritics on purpose so the normalized search path gets exercised
// against realistic data.
func (s *Server) SeedProducts() {
	products := []map[string]interface{}{
		{
			"name":        "Áo thun nam cotton",
			"price":       159000,
			"thumbnail":   "https://picsum.photos/seed/aothun/200",
			"description": "Áo thun cotton thoáng mát, form regular",
		},
		{
			"name":        "Tai nghe không dây",
			"price":       790000,
			"thumbnail":   "https://picsum.photos/seed/tainghe/200",
			"description": "Tai nghe bluetooth chống ồn, pin 30 giờ",
		},
		{
			"name":        "Bình tưới cây 2L",
			"price":       45000,
			"thumbnail":   "https://picsum.photos/seed/binhtuoi/200",
			"description": "Dụng cụ làm vườn, vòi sen tháo rời",
		},
		{
			"name":        "Giày chạy bộ",
			"price":       1250000,
			"thumbnail":   "https://picsum.photos/seed/giay/200",
			"description": "Đế êm, phù hợp chạy đường dài",
		},
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range products {
		p["createdAt"] = now
		s.Insert(CollectionProducts, p)
	}
}
