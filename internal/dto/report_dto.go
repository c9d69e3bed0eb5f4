package dto

type InventoryReportDto struct {
	Sessions      int64  `json:"sessions"`
	Boxes         int64  `json:"boxes"`
	ArchivedBoxes int64  `json:"archivedBoxes"`
	GeneratedAt   string `json:"generatedAt"`
}
