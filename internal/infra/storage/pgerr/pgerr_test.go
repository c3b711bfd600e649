package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsExclusionViolation(t *testing.T) {
	err := &pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"}

	assert.True(t, IsExclusionViolation(err))
	assert.True(t, IsExclusionViolation(err, "bookings_no_overlap"))
	assert.False(t, IsExclusionViolation(err, "other_constraint"))
	assert.False(t, IsUniqueViolation(err))
}

func TestMatchesWrappedError(t *testing.T) {
	pqErr := &pq.Error{Code: "23505", Constraint: "companies_domain_unique"}
	wrapped := fmt.Errorf("repository: execute insert: %w", pqErr)

	assert.True(t, IsUniqueViolation(wrapped, "companies_domain_unique"))
}

func TestNonPqError(t *testing.T) {
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestCheckAndForeignKey(t *testing.T) {
	checkErr := &pq.Error{Code: "23514", Constraint: "bookings_duration_step"}
	fkErr := &pq.Error{Code: "23503", Constraint: "bookings_coworking_item_id_fkey"}

	assert.True(t, IsCheckViolation(checkErr, "bookings_time_order", "bookings_duration_step"))
	assert.True(t, IsForeignKeyViolation(fkErr))
	assert.False(t, IsCheckViolation(fkErr))
}
