package repository

import "github.com/eslsoft/drillnet/pkg/filterexpr"

var listSessionsSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"status": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ: "Status",
				filterexpr.OpIN: "Statuses",
			},
		},
		"topic_id": {
			Kind: filterexpr.KindNumber,
			Ops:  map[filterexpr.Op]string{filterexpr.OpEQ: "TopicID"},
		},
		"created_at": {
			Kind: filterexpr.KindTimestamp,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpGTE: "CreatedAfter",
				filterexpr.OpLTE: "CreatedBefore",
			},
		},
		"completed_at": {
			Kind: filterexpr.KindTimestamp,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpGTE: "CompletedAfter",
				filterexpr.OpLTE: "CompletedBefore",
			},
		},
	},
	Order: filterexpr.OrderSchema{
		Default:     "created_at",
		DefaultDesc: true,
		Fields: map[string]string{
			"created_at":   "created_at",
			"completed_at": "completed_at",
			"id":           "id",
		},
	},
}
