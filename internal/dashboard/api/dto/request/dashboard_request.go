package request

type DashboardQuery struct {
	Search   string `form:"q" binding:"max=200"`
	Status   string `form:"status" binding:"omitempty,oneof=all running stopped error unknown"`
	Category string `form:"category" binding:"omitempty,oneof=all development testing staging production"`
	ViewMode string `form:"view" binding:"omitempty,oneof=card list"`
	Modal    string `form:"modal" binding:"omitempty,oneof=version"`
}
