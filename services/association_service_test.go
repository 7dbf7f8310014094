package services_test

import (
	"context"
	"testing"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"github.com/g-vinokurov/interstellarium/services"
	"github.com/g-vinokurov/interstellarium/testutil"
	"github.com/stretchr/testify/require"
)

func TestGroupUserLinks(t *testing.T) {
	tdb := testutil.SetupTestDB(t)
	defer tdb.Close(t)
	defer testutil.TruncateAllTables(tdb.DB)

	ctx := context.Background()
	links := services.NewGroupUserLinks(tdb.DB)

	group, err := testutil.CreateTestGroup(tdb.DB, "Optics")
	require.NoError(t, err)
	user, err := testutil.CreateTestUser(tdb.DB, "member@example.com", "password123", false, false)
	require.NoError(t, err)

	require.NoError(t, links.Link(ctx, group.ID, user.ID))

	// Linking the same pair again is rejected, not merged.
	err = links.Link(ctx, group.ID, user.ID)
	require.ErrorIs(t, err, services.ErrAlreadyLinked)

	var count int64
	require.NoError(t, tdb.DB.Model(&models.GroupUser{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	require.NoError(t, links.Unlink(ctx, group.ID, user.ID))

	err = links.Unlink(ctx, group.ID, user.ID)
	require.ErrorIs(t, err, services.ErrLinkNotFound)
}

func TestLinkValidatesBothSides(t *testing.T) {
	tdb := testutil.SetupTestDB(t)
	defer tdb.Close(t)
	defer testutil.TruncateAllTables(tdb.DB)

	ctx := context.Background()
	links := services.NewContractProjectLinks(tdb.DB)

	contract, err := testutil.CreateTestContract(tdb.DB, "Alpha")
	require.NoError(t, err)
	project, err := testutil.CreateTestProject(tdb.DB, "Orbit")
	require.NoError(t, err)

	err = links.Link(ctx, 9999, project.ID)
	require.ErrorIs(t, err, services.ErrOwnerNotFound)

	err = links.Link(ctx, contract.ID, 9999)
	require.ErrorIs(t, err, services.ErrPeerNotFound)

	require.NoError(t, links.Link(ctx, contract.ID, project.ID))
}

func TestAssociationsNeverTouchAssignmentLogs(t *testing.T) {
	tdb := testutil.SetupTestDB(t)
	defer tdb.Close(t)
	defer testutil.TruncateAllTables(tdb.DB)

	ctx := context.Background()
	links := services.NewGroupUserLinks(tdb.DB)

	group, err := testutil.CreateTestGroup(tdb.DB, "Optics")
	require.NoError(t, err)
	user, err := testutil.CreateTestUser(tdb.DB, "member@example.com", "password123", false, false)
	require.NoError(t, err)

	require.NoError(t, links.Link(ctx, group.ID, user.ID))
	require.NoError(t, links.Unlink(ctx, group.ID, user.ID))

	var count int64
	require.NoError(t, tdb.DB.Model(&models.UserDepartmentAssignment{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
	require.NoError(t, tdb.DB.Model(&models.EquipmentGroupAssignment{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
