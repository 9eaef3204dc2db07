package evaluator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSetDefectStatus(t *testing.T) {
	a := &Defect{ID: uuid.New(), Status: DefectStatusPending, RepairCost: 100}
	b := &Defect{ID: uuid.New(), Status: DefectStatusPending, RepairCost: 200}
	defects := []*Defect{a, b}

	t.Run("replaces exactly one record", func(t *testing.T) {
		out, err := SetDefectStatus(defects, b.ID, DefectStatusAccepted)
		require.NoError(t, err)

		require.Len(t, out, 2)
		require.Same(t, a, out[0], "untouched records are shared, not copied")
		require.NotSame(t, b, out[1])
		require.Equal(t, DefectStatusAccepted, out[1].Status)
		require.Equal(t, Money(200), out[1].RepairCost)

		// Input list is unchanged.
		require.Equal(t, DefectStatusPending, b.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := SetDefectStatus(defects, uuid.New(), DefectStatusRejected)
		require.Equal(t, ENOTFOUND, ErrorCode(err))
	})

	t.Run("unknown status value", func(t *testing.T) {
		_, err := SetDefectStatus(defects, a.ID, DefectStatus("bogus"))
		require.Equal(t, EINVALID, ErrorCode(err))
	})
}

func TestSetDefectCost(t *testing.T) {
	a := &Defect{ID: uuid.New(), Status: DefectStatusAccepted, RepairCost: 100}
	defects := []*Defect{a}

	t.Run("replaces the cost", func(t *testing.T) {
		out, err := SetDefectCost(defects, a.ID, 2550)
		require.NoError(t, err)
		require.Equal(t, Money(2550), out[0].RepairCost)
		require.Equal(t, Money(100), a.RepairCost)
	})

	t.Run("negative cost rejected", func(t *testing.T) {
		_, err := SetDefectCost(defects, a.ID, -1)
		require.Equal(t, EINVALID, ErrorCode(err))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := SetDefectCost(defects, uuid.New(), 100)
		require.Equal(t, ENOTFOUND, ErrorCode(err))
	})
}

func TestBoundingBoxValidate(t *testing.T) {
	valid := BoundingBox{XMin: 10, YMin: 20, XMax: 40, YMax: 60}
	require.NoError(t, valid.Validate())

	for name, box := range map[string]BoundingBox{
		"xmin negative":     {XMin: -1, YMin: 0, XMax: 50, YMax: 50},
		"xmax over 100":     {XMin: 0, YMin: 0, XMax: 101, YMax: 50},
		"xmin equals xmax":  {XMin: 50, YMin: 0, XMax: 50, YMax: 50},
		"ymin after ymax":   {XMin: 0, YMin: 60, XMax: 50, YMax: 40},
		"ymax over 100":     {XMin: 0, YMin: 0, XMax: 50, YMax: 100.5},
	} {
		t.Run(name, func(t *testing.T) {
			require.Error(t, box.Validate())
		})
	}
}

func TestDefectBillable(t *testing.T) {
	require.True(t, (&Defect{Status: DefectStatusPending}).Billable())
	require.True(t, (&Defect{Status: DefectStatusAccepted}).Billable())
	require.False(t, (&Defect{Status: DefectStatusRejected}).Billable())
}
