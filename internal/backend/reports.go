package backend

import (
	"context"
	"net/http"

	"backoffice/internal/apiclient"
	"backoffice/internal/models"
)

const reportsURI = adsURI + "/report"

type Reports struct {
	c *apiclient.Client
}

// BoughtAds lists ads bought in the queried window. The query travels as the
// JSON body.
func (r *Reports) BoughtAds(ctx context.Context, query models.BoughtAdsQuery) ([]models.Ad, error) {
	var out []models.Ad
	if err := r.c.Do(ctx, http.MethodPost, reportsURI+"/bought", nil, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Reports) BoughtAdsPDF(ctx context.Context, query models.BoughtAdsQuery) ([]byte, error) {
	return r.c.DoBytes(ctx, http.MethodPost, reportsURI+"/bought/pdf", nil, query)
}

// AdvertiserEarnings is a POST whose filter travels in the query string.
func (r *Reports) AdvertiserEarnings(ctx context.Context, query models.AdvertiserEarningsQuery) (*models.AdvertiserEarningsReport, error) {
	params, err := apiclient.ToParams(query)
	if err != nil {
		return nil, err
	}
	return one[models.AdvertiserEarningsReport](ctx, r.c, http.MethodPost, reportsURI+"/ganancias-anunciante", params, nil)
}

func (r *Reports) AdvertiserEarningsPDF(ctx context.Context, query models.AdvertiserEarningsQuery) ([]byte, error) {
	params, err := apiclient.ToParams(query)
	if err != nil {
		return nil, err
	}
	return r.c.DoBytes(ctx, http.MethodPost, reportsURI+"/ganancias-anunciante/pdf", params, nil)
}
