// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DrillScoreEventsColumns holds the columns for the "drill_score_events" table.
	DrillScoreEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "workout_id", Type: field.TypeString, Nullable: true},
		{Name: "drill_type", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "ai_generated", Type: field.TypeBool, Default: false},
		{Name: "practice", Type: field.TypeJSON, Nullable: true},
	}
	// DrillScoreEventsTable holds the schema information for the "drill_score_events" table.
	DrillScoreEventsTable = &schema.Table{
		Name:       "drill_score_events",
		Columns:    DrillScoreEventsColumns,
		PrimaryKey: []*schema.Column{DrillScoreEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "drillscoreevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DrillScoreEventsColumns[1]},
			},
			{
				Name:    "drillscoreevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DrillScoreEventsColumns[2]},
			},
			{
				Name:    "drillscoreevent_drill_type",
				Unique:  false,
				Columns: []*schema.Column{DrillScoreEventsColumns[5]},
			},
			{
				Name:    "drillscoreevent_workout_id",
				Unique:  false,
				Columns: []*schema.Column{DrillScoreEventsColumns[4]},
			},
		},
	}
	// GemEventsColumns holds the columns for the "gem_events" table.
	GemEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "gem_type", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString},
		{Name: "reference", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "workout_id", Type: field.TypeString, Nullable: true},
		{Name: "reason", Type: field.TypeString},
	}
	// GemEventsTable holds the schema information for the "gem_events" table.
	GemEventsTable = &schema.Table{
		Name:       "gem_events",
		Columns:    GemEventsColumns,
		PrimaryKey: []*schema.Column{GemEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gemevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[1]},
			},
			{
				Name:    "gemevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[2]},
			},
			{
				Name:    "gemevent_gem_type",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[3]},
			},
			{
				Name:    "gemevent_user_id_gem_type",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[6], GemEventsColumns[3]},
			},
			{
				Name:    "gemevent_workout_id",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[7]},
			},
			{
				Name:    "gemevent_rarity",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3], LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "reference", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "accuracy", Type: field.TypeInt},
		{Name: "seconds", Type: field.TypeInt, Default: 0},
		{Name: "from_level", Type: field.TypeInt},
		{Name: "to_level", Type: field.TypeInt},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_reference",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[4]},
			},
			{
				Name:    "masteryevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// WorkoutEventsColumns holds the columns for the "workout_events" table.
	WorkoutEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "workout_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "date", Type: field.TypeString},
		{Name: "theme", Type: field.TypeString, Nullable: true},
		{Name: "group_challenge", Type: field.TypeBool, Default: false},
		{Name: "memorization_score", Type: field.TypeInt},
		{Name: "context_score", Type: field.TypeInt},
		{Name: "verse_match_score", Type: field.TypeInt},
		{Name: "rearrange_score", Type: field.TypeInt, Nullable: true},
		{Name: "total_score", Type: field.TypeInt},
		{Name: "streak", Type: field.TypeInt, Default: 0},
	}
	// WorkoutEventsTable holds the schema information for the "workout_events" table.
	WorkoutEventsTable = &schema.Table{
		Name:       "workout_events",
		Columns:    WorkoutEventsColumns,
		PrimaryKey: []*schema.Column{WorkoutEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workoutevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{WorkoutEventsColumns[1]},
			},
			{
				Name:    "workoutevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{WorkoutEventsColumns[2]},
			},
			{
				Name:    "workoutevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{WorkoutEventsColumns[4]},
			},
			{
				Name:    "workoutevent_date",
				Unique:  false,
				Columns: []*schema.Column{WorkoutEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DrillScoreEventsTable,
		GemEventsTable,
		LlmRequestEventsTable,
		MasteryEventsTable,
		SnapshotsTable,
		WorkoutEventsTable,
	}
)

func init() {
}
