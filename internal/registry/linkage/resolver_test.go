package linkage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardregistry/internal/registry/models"
	dwellingstore "wardregistry/internal/registry/store/dwelling"
	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
)

func seedDwelling(t *testing.T, store *dwellingstore.InMemory) *models.Dwelling {
	t.Helper()
	d, err := models.NewDwelling(id.NewDwellingID(), "2026-0001", models.DwellingDraft{
		HouseNumber: "12",
		StreetName:  "Lê Lợi",
		OwnerName:   "Nguyen Van A",
		Members: []models.HouseholdMember{
			{Name: "Tran Thi B", Relationship: "Vợ"},
			{Name: "Nguyen Van C"},
		},
	}, "clerk", time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Insert(context.Background(), d))
	return d
}

func TestResolveAddress(t *testing.T) {
	store := dwellingstore.NewInMemory()
	r := New(store)
	d := seedDwelling(t, store)

	assert.Equal(t, "12 Lê Lợi", r.ResolveAddress(d.ID))
	assert.Equal(t, "", r.ResolveAddress(id.NewDwellingID()))
	assert.Equal(t, "", r.ResolveAddress(id.DwellingID{}))

	_, _, err := store.SoftDelete(context.Background(), d.ID, "clerk", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "12 Lê Lợi", r.ResolveAddress(d.ID), "soft-deleted dwellings keep their address")
}

func TestResolveHouseholdChoices(t *testing.T) {
	store := dwellingstore.NewInMemory()
	r := New(store)
	d := seedDwelling(t, store)

	choices := r.ResolveHouseholdChoices(d.ID)
	require.Len(t, choices, 3)
	assert.Equal(t, Choice{ID: models.OwnerChoiceID, Label: "Nguyen Van A (owner)"}, choices[0])
	assert.Equal(t, Choice{ID: d.Members[0].ID.String(), Label: "Tran Thi B (Vợ)"}, choices[1])
	assert.Equal(t, Choice{ID: d.Members[1].ID.String(), Label: "Nguyen Van C"}, choices[2])

	assert.Empty(t, r.ResolveHouseholdChoices(id.NewDwellingID()))
}

func TestBindPayee(t *testing.T) {
	store := dwellingstore.NewInMemory()
	r := New(store)
	d := seedDwelling(t, store)

	t.Run("empty choice is in person", func(t *testing.T) {
		p, err := r.BindPayee(d.ID, "")
		require.NoError(t, err)
		assert.True(t, p.IsInPerson())
	})

	t.Run("owner", func(t *testing.T) {
		p, err := r.BindPayee(d.ID, models.OwnerChoiceID)
		require.NoError(t, err)
		assert.True(t, p.Owner)
		assert.Equal(t, "Nguyen Van A", p.DisplayName)
	})

	t.Run("member", func(t *testing.T) {
		p, err := r.BindPayee(d.ID, d.Members[0].ID.String())
		require.NoError(t, err)
		require.NotNil(t, p.MemberID)
		assert.Equal(t, d.Members[0].ID, *p.MemberID)
		assert.Equal(t, "Tran Thi B", p.DisplayName)
	})

	t.Run("stranger is a referential error", func(t *testing.T) {
		_, err := r.BindPayee(d.ID, id.NewMemberID().String())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeReferential))

		_, err = r.BindPayee(d.ID, "someone")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeReferential))
	})

	t.Run("unknown dwelling is a referential error", func(t *testing.T) {
		_, err := r.BindPayee(id.NewDwellingID(), models.OwnerChoiceID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeReferential))
	})
}

func TestResolvePayee(t *testing.T) {
	ctx := context.Background()
	store := dwellingstore.NewInMemory()
	r := New(store)
	d := seedDwelling(t, store)

	assert.Equal(t, models.PayeeInPerson, r.ResolvePayee(d.ID, models.Payee{}))

	member, err := r.BindPayee(d.ID, d.Members[0].ID.String())
	require.NoError(t, err)
	owner, err := r.BindPayee(d.ID, models.OwnerChoiceID)
	require.NoError(t, err)

	// rename the member and the owner; display follows the live names
	_, err = store.Update(ctx, d.ID, func(cur *models.Dwelling) error {
		members := append([]models.HouseholdMember(nil), cur.Members...)
		members[0].Name = "Tran Thi B2"
		name := "Nguyen Van A2"
		return cur.Apply(models.DwellingPatch{OwnerName: &name, Members: &members}, "clerk", time.Now())
	})
	require.NoError(t, err)
	assert.Equal(t, "Tran Thi B2", r.ResolvePayee(d.ID, member))
	assert.Equal(t, "Nguyen Van A2", r.ResolvePayee(d.ID, owner))

	// drop the member; the snapshot is shown as removed
	_, err = store.Update(ctx, d.ID, func(cur *models.Dwelling) error {
		members := cur.Members[1:]
		return cur.Apply(models.DwellingPatch{Members: &members}, "clerk", time.Now())
	})
	require.NoError(t, err)
	assert.Equal(t, "Tran Thi B (removed)", r.ResolvePayee(d.ID, member))
}
