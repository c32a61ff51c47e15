package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"

	"github.com/spf13/cast"
)

const snacksURI = "/v1/snacks"

type Snacks struct {
	c *apiclient.Client
}

func (s *Snacks) Get(ctx context.Context, snackID string) (*models.Snack, error) {
	return one[models.Snack](ctx, s.c, http.MethodGet, snacksURI+"/"+seg(snackID), nil, nil)
}

func (s *Snacks) ByCinema(ctx context.Context, cinemaID string) ([]models.Snack, error) {
	return list[models.Snack](ctx, s.c, snacksURI+"/cinema/"+seg(cinemaID), nil)
}

func (s *Snacks) Create(ctx context.Context, upload models.SnackUpload) (*models.Snack, error) {
	var out models.Snack
	if err := s.c.DoMultipart(ctx, http.MethodPost, snacksURI, snackForm(upload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a snack. The image part is only sent when a new file is
// given.
func (s *Snacks) Update(ctx context.Context, snackID string, upload models.SnackUpload) (*models.Snack, error) {
	var out models.Snack
	if err := s.c.DoMultipart(ctx, http.MethodPatch, snacksURI+"/"+seg(snackID), snackForm(upload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func snackForm(upload models.SnackUpload) *apiclient.Form {
	form := apiclient.NewForm().
		Field("name", upload.Name).
		Field("price", cast.ToString(upload.Price))
	if upload.CinemaID != "" {
		form.Field("cinemaId", upload.CinemaID)
	}
	return form.File("file", upload.File)
}
