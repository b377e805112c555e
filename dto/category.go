package dto

// RoomCategoryResponse là metadata loại phòng từ endpoint room categories
type RoomCategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NightlyRate float64 `json:"nightlyRate"`
	TotalRooms  int     `json:"totalRooms"`
	People      int     `json:"people"`
}

// CategoryMatch là kết quả tìm loại phòng theo tên
type CategoryMatch struct {
	Category RoomCategoryResponse `json:"category"`
	Score    float64              `json:"score"`
}
