package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const adsURI = "/v1/adds"

type Ads struct {
	c *apiclient.Client
}

// Search pages through ads matching filter. Pages start at 0.
func (a *Ads) Search(ctx context.Context, filter models.AdFilter, page int) (*models.Page[models.Ad], error) {
	params, err := apiclient.ToParams(filter)
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = apiclient.Params{}
	}
	params["page"] = page
	return one[models.Page[models.Ad]](ctx, a.c, http.MethodGet, adsURI+"/search", params, nil)
}

// Random picks an ad to show in a cinema. Any failure yields nil so the
// caller simply renders no ad.
func (a *Ads) Random(ctx context.Context, cinemaID string, adType models.AdType) *models.Ad {
	path := adsURI + "/public/cinema/" + seg(cinemaID) + "/type/" + seg(string(adType)) + "/random"
	var out *models.Ad
	if err := a.c.Do(ctx, http.MethodGet, path, apiclient.Params{"cinemaId": cinemaID, "type": adType}, nil, &out); err != nil {
		return nil
	}
	return out
}

func (a *Ads) Get(ctx context.Context, adID string) (*models.Ad, error) {
	return one[models.Ad](ctx, a.c, http.MethodGet, adsURI+"/"+seg(adID), nil, nil)
}

func (a *Ads) ByCinema(ctx context.Context, cinemaID string) ([]models.Ad, error) {
	return list[models.Ad](ctx, a.c, adsURI+"/cinema/"+seg(cinemaID), nil)
}

func (a *Ads) ByUser(ctx context.Context, userID string) ([]models.Ad, error) {
	return list[models.Ad](ctx, a.c, adsURI+"/user/"+seg(userID), nil)
}

func (a *Ads) Delete(ctx context.Context, adID string) error {
	return a.c.Do(ctx, http.MethodDelete, adsURI+"/"+seg(adID), nil, nil, nil)
}

// ToggleActive flips the active flag of an ad.
func (a *Ads) ToggleActive(ctx context.Context, adID string) error {
	return a.c.Do(ctx, http.MethodPatch, adsURI+"/state/"+seg(adID), nil, nil, nil)
}

func (a *Ads) RetryPayment(ctx context.Context, adID string) error {
	return a.c.Do(ctx, http.MethodPost, adsURI+"/retry-paid/"+seg(adID), nil, nil, nil)
}

func (a *Ads) Create(ctx context.Context, upload models.CreateAdUpload) (*models.Ad, error) {
	form := apiclient.NewForm().
		Field("content", upload.Content).
		Field("type", string(upload.Type)).
		Field("description", upload.Description).
		Field("cinemaId", upload.CinemaID).
		Field("urlContent", upload.URLContent).
		Field("userId", upload.UserID).
		Field("durationDaysId", upload.DurationDaysID).
		File("file", upload.File)

	var out models.Ad
	if err := a.c.DoMultipart(ctx, http.MethodPost, adsURI, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits an ad. The file part is omitted when upload.File is nil.
func (a *Ads) Update(ctx context.Context, adID string, upload models.UpdateAdUpload) (*models.Ad, error) {
	form := apiclient.NewForm().
		Field("content", upload.Content).
		Field("description", upload.Description).
		Field("urlContent", upload.URLContent).
		File("file", upload.File)

	var out models.Ad
	if err := a.c.DoMultipart(ctx, http.MethodPatch, adsURI+"/"+seg(adID), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
