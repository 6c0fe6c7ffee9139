package filterexpr

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

type listSessionsParams struct {
	Status        string
	Statuses      []string
	TopicID       *int64
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	OrderKey      string
	OrderDesc     bool
}

type fakeMsg struct {
	filter  string
	orderBy string
}

func (m fakeMsg) GetFilter() string  { return m.filter }
func (m fakeMsg) GetOrderBy() string { return m.orderBy }

var sessionsSchema = ResourceSchema{
	Filter: map[string]FilterField{
		"status": {
			Kind: KindString,
			Ops: map[Op]string{
				OpEQ: "Status",
				OpIN: "Statuses",
			},
		},
		"topic_id": {
			Kind: KindNumber,
			Ops:  map[Op]string{OpEQ: "TopicID"},
		},
		"created_at": {
			Kind: KindTimestamp,
			Ops: map[Op]string{
				OpGTE: "CreatedAfter",
				OpLTE: "CreatedBefore",
			},
		},
	},
	Order: OrderSchema{
		Default:     "created_at",
		DefaultDesc: true,
		Fields: map[string]string{
			"created_at":   "created_at",
			"completed_at": "completed_at",
			"id":           "id",
		},
	},
}

func TestBind_Conjunction(t *testing.T) {
	var params listSessionsParams
	msg := fakeMsg{
		filter:  `status == 'completed' && topic_id == 7 && created_at >= timestamp('2025-06-01T00:00:00Z')`,
		orderBy: "completed_at desc",
	}

	if err := Bind(msg, &params, sessionsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}

	if params.Status != "completed" {
		t.Fatalf("expected Status 'completed', got %q", params.Status)
	}
	if params.TopicID == nil || *params.TopicID != 7 {
		t.Fatalf("expected TopicID 7, got %v", params.TopicID)
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if params.CreatedAfter == nil || !params.CreatedAfter.Equal(want) {
		t.Fatalf("expected CreatedAfter %v, got %v", want, params.CreatedAfter)
	}
	if params.CreatedBefore != nil {
		t.Fatalf("expected CreatedBefore nil, got %v", params.CreatedBefore)
	}
	if params.OrderKey != "completed_at" || !params.OrderDesc {
		t.Fatalf("expected order completed_at desc, got %s desc=%v", params.OrderKey, params.OrderDesc)
	}
}

func TestBind_InList(t *testing.T) {
	var params listSessionsParams
	msg := fakeMsg{filter: `status in ['active', 'paused']`}

	if err := Bind(msg, &params, sessionsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if !reflect.DeepEqual(params.Statuses, []string{"active", "paused"}) {
		t.Fatalf("expected Statuses [active paused], got %v", params.Statuses)
	}
}

func TestBind_EmptyUsesDefaults(t *testing.T) {
	var params listSessionsParams
	if err := Bind(fakeMsg{}, &params, sessionsSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if params.OrderKey != "created_at" || !params.OrderDesc {
		t.Fatalf("expected default order created_at desc, got %s desc=%v", params.OrderKey, params.OrderDesc)
	}
	if params.Status != "" || params.TopicID != nil {
		t.Fatalf("expected no filter bindings, got %+v", params)
	}
}

func TestBind_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		filter  string
		orderBy string
		wantErr string
	}{
		{name: "or", filter: `status == 'active' || topic_id == 1`, wantErr: "only AND"},
		{name: "unknown field", filter: `difficulty == 3`, wantErr: "not filterable"},
		{name: "wrong operator", filter: `status >= 'active'`, wantErr: "not allowed"},
		{name: "wrong literal", filter: `topic_id == 'seven'`, wantErr: "numeric"},
		{name: "fractional id", filter: `topic_id == 7.5`, wantErr: "fractional"},
		{name: "bad timestamp", filter: `created_at >= timestamp('yesterday')`, wantErr: "RFC3339"},
		{name: "unknown order key", orderBy: "status desc", wantErr: "ordering"},
		{name: "bad direction", orderBy: "created_at sideways", wantErr: "direction"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var params listSessionsParams
			err := Bind(fakeMsg{filter: tc.filter, orderBy: tc.orderBy}, &params, sessionsSchema)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
