package api

import (
	"time"

	ledgerdomain "github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
	"github.com/nitin-trapo/home-construction-ledger/internal/project/domain"
)

type createProjectReq struct {
	Name         string              `json:"name" binding:"required"`
	Budget       ledgerdomain.Amount `json:"budget"`
	AssignToUser string              `json:"assignToUser"`
}

type projectResp struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Budget    ledgerdomain.Amount `json:"budget"`
	CreatedBy string              `json:"createdBy"`
	CreatedAt time.Time           `json:"createdAt"`
}

func toProjectResp(p domain.Project) projectResp {
	return projectResp{
		ID:        p.ID,
		Name:      p.Name,
		Budget:    ledgerdomain.NewAmount(p.Budget),
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}

type settingsReq struct {
	Budget      ledgerdomain.Amount `json:"budget"`
	ProjectName string              `json:"projectName"`
	Currency    string              `json:"currency"`
	DateFormat  string              `json:"dateFormat"`
}

type settingsResp struct {
	Budget      ledgerdomain.Amount `json:"budget"`
	ProjectName string              `json:"projectName"`
	Currency    string              `json:"currency"`
	DateFormat  string              `json:"dateFormat"`
}

type statsResp struct {
	TotalSpent    ledgerdomain.Amount            `json:"totalSpent"`
	TotalReceived ledgerdomain.Amount            `json:"totalReceived"`
	Budget        ledgerdomain.Amount            `json:"budget"`
	Remaining     ledgerdomain.Amount            `json:"remaining"`
	PercentUsed   int64                          `json:"percentUsed"`
	CategoryWise  map[string]ledgerdomain.Amount `json:"categoryWise"`
}
