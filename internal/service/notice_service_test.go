package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-api/internal/dto"
	"github.com/campushub/campus-api/internal/models"
)

func TestNoticeCreateSanitizesMarkup(t *testing.T) {
	repo := &stubNoticeRepo{}
	svc := NewNoticeService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	payload := dto.NoticeCreateRequest{
		Title:       "  Water maintenance  ",
		Description: `<script>alert(1)</script><p>Supply off between 2pm and 4pm</p>`,
	}
	_, err := svc.Create(context.Background(), payload, Actor{ID: 70, Role: models.RoleAdmin})
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	require.Equal(t, "Water maintenance", repo.created.Title)
	require.NotContains(t, repo.created.Description, "script")
	require.Contains(t, repo.created.Description, "Supply off between 2pm and 4pm")
}

func TestNoticeCreateRejectsBodyEmptyAfterSanitize(t *testing.T) {
	repo := &stubNoticeRepo{}
	svc := NewNoticeService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	payload := dto.NoticeCreateRequest{
		Title:       "Empty body",
		Description: `<script>alert(1)</script>`,
	}
	_, err := svc.Create(context.Background(), payload, Actor{ID: 71, Role: models.RoleAdmin})
	require.ErrorIs(t, err, ErrValidationFailed)
	require.Nil(t, repo.created)
}

func TestNoticeCreateDefaultsCategoryAndAudience(t *testing.T) {
	repo := &stubNoticeRepo{}
	svc := NewNoticeService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	payload := dto.NoticeCreateRequest{Title: "Defaults", Description: "plain body"}
	_, err := svc.Create(context.Background(), payload, Actor{ID: 72, Role: models.RoleAdmin})
	require.NoError(t, err)

	require.Equal(t, models.NoticeDefaultCategory, repo.created.Category)
	require.Equal(t, models.NoticeAudienceAll, repo.created.Audience)
	require.True(t, repo.created.IsActive)
}

func TestNoticeListAdminSeesFullSet(t *testing.T) {
	repo := &stubNoticeRepo{
		all:     []models.Notice{{ID: 1, IsActive: true}, {ID: 2, IsActive: false}},
		visible: []models.Notice{{ID: 1, IsActive: true}},
	}
	svc := NewNoticeService(repo, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	adminView, err := svc.ListVisible(context.Background(), models.RoleAdmin, 10)
	require.NoError(t, err)
	require.Len(t, adminView, 2)
	require.Equal(t, 1, repo.listAllCalls)

	studentView, err := svc.ListVisible(context.Background(), models.RoleStudent, 10)
	require.NoError(t, err)
	require.Len(t, studentView, 1)
}
