package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"wastetrack/internal/reports"
	"wastetrack/internal/reports/mocks"
	"wastetrack/pkg/types"

	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

type testService struct {
	*Service
	query     *mocks.MockQueryService
	completer *mocks.MockReportCompleter
	loader    *mocks.MockReportLoader
}

func newTestService(t *testing.T) *testService {
	t.Helper()

	ctrl := gomock.NewController(t)
	query := mocks.NewMockQueryService(ctrl)
	completer := mocks.NewMockReportCompleter(ctrl)
	loader := mocks.NewMockReportLoader(ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	config := &types.Config{
		Environment:     "development",
		ServerPort:      0,
		ReadTimeoutSec:  5,
		WriteTimeoutSec: 5,
		MaxPhotoBytes:   1 << 20,
		FlashCookieName: "flash",
		DefaultDistrict: "Arau",
	}

	s, err := New(config, logger, query, completer, loader)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return &testService{Service: s, query: query, completer: completer, loader: loader}
}

func (ts *testService) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)
	return rec
}

func float(v float64) *float64 {
	return &v
}

func sampleViews() []*types.ReportView {
	return []*types.ReportView{
		{
			ResidentID: "res-1",
			ReportID:   "abcdefgh",
			ShortID:    "abcde",
			District:   types.DistrictArau,
			Issue:      "Overflowing bin",
			Latitude:   float(6.43),
			Longitude:  float(100.27),
			Status:     types.ReportStatusPending,
		},
		{
			ResidentID: "res-2",
			ReportID:   "zyxwvuts",
			ShortID:    "zyxwv",
			District:   types.DistrictArau,
			Issue:      "Bulky waste",
			Status:     types.ReportStatusPending,
		},
	}
}

func multipartBody(t *testing.T, fields map[string]string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField() error = %v", err)
		}
	}
	if photo != nil {
		fw, err := mw.CreateFormFile("photo", "after.jpg")
		if err != nil {
			t.Fatalf("CreateFormFile() error = %v", err)
		}
		_, _ = fw.Write(photo)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	return body, mw.FormDataContentType()
}

func flashCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash" && c.Value != "" {
			return c
		}
	}
	t.Fatalf("no flash cookie set")
	return nil
}

func TestHandleHealth(t *testing.T) {
	ts := newTestService(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(headerRequestID) == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestStripTrailingSlash(t *testing.T) {
	ts := newTestService(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/schedule/?district=Kangar", nil))

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/schedule?district=Kangar" {
		t.Fatalf("Location = %q", got)
	}
}

func TestHandleSchedule(t *testing.T) {
	t.Run("defaults to Arau", func(t *testing.T) {
		ts := newTestService(t)
		ts.query.EXPECT().FetchPending(gomock.Any(), types.DistrictArau).Return(sampleViews(), nil)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/schedule", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		body := rec.Body.String()
		for _, want := range []string{
			"Overflowing bin - abcde",
			"Bulky waste - zyxwv",
			"/residents/res-1/reports/abcdefgh/submit",
			"https://www.google.com/maps/search/?api=1&amp;query=6.43,100.27",
		} {
			if !strings.Contains(body, want) {
				t.Errorf("body missing %q", want)
			}
		}
		if strings.Count(body, "View Location") != 1 {
			t.Errorf("expected one location link, body:\n%s", body)
		}
	})

	t.Run("selected district", func(t *testing.T) {
		ts := newTestService(t)
		ts.query.EXPECT().FetchPending(gomock.Any(), types.DistrictKangar).Return([]*types.ReportView{}, nil)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/schedule?district=kangar", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "No pending reports.") {
			t.Fatalf("expected empty state")
		}
	})

	for _, district := range []string{"Perlis", "ALL"} {
		t.Run("rejects "+district, func(t *testing.T) {
			ts := newTestService(t)

			rec := ts.do(httptest.NewRequest(http.MethodGet, "/schedule?district="+district, nil))

			if !strings.Contains(rec.Body.String(), "Please select a valid district.") {
				t.Fatalf("expected district notification, body:\n%s", rec.Body.String())
			}
		})
	}

	t.Run("fetch failure", func(t *testing.T) {
		ts := newTestService(t)
		ts.query.EXPECT().FetchPending(gomock.Any(), types.DistrictArau).
			Return(nil, fmt.Errorf("%w: boom", types.ErrFetchFailed))

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/schedule", nil))

		if !strings.Contains(rec.Body.String(), "Failed to fetch reports.") {
			t.Fatalf("expected fetch notification")
		}
	})
}

func TestHandleMap(t *testing.T) {
	t.Run("permission denied keeps loading", func(t *testing.T) {
		ts := newTestService(t)
		ts.query.EXPECT().FetchPending(gomock.Any(), types.DistrictAll).Return(sampleViews(), nil)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/map?permission=denied", nil))

		body := rec.Body.String()
		if !strings.Contains(body, "Permission Denied") || !strings.Contains(body, "Loading map...") {
			t.Fatalf("expected denied loading state, body:\n%s", body)
		}
	})

	t.Run("pins with location", func(t *testing.T) {
		ts := newTestService(t)
		ts.query.EXPECT().FetchPending(gomock.Any(), types.DistrictArau).Return(sampleViews(), nil)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/map?district=Arau&lat=6.4&lon=100.2", nil))

		body := rec.Body.String()
		if strings.Contains(body, "Loading map...") {
			t.Fatalf("map should not be loading")
		}
		if !strings.Contains(body, "Issue: Overflowing bin") || !strings.Contains(body, "ID Report: abcde") {
			t.Fatalf("expected pin for located report, body:\n%s", body)
		}
		if strings.Contains(body, "Issue: Bulky waste") {
			t.Fatalf("report without coordinates must not become a pin")
		}
	})
}

func TestHandleMapLocation(t *testing.T) {
	ts := newTestService(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/map/location?lat=6.43&lon=100.27&from_lat=6.4&from_lon=100.2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "origin=6.4%2C100.2") {
		t.Fatalf("expected directions link with origin, body:\n%s", rec.Body.String())
	}

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/map/location?lat=6.43", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/map" {
		t.Fatalf("expected redirect to map, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestHandleGetSubmit(t *testing.T) {
	t.Run("renders issue label", func(t *testing.T) {
		ts := newTestService(t)
		ts.loader.EXPECT().LoadReport(gomock.Any(), "res-1", "abcdefgh").Return(&types.Report{
			ResidentID: "res-1",
			ID:         "abcdefgh",
			Issue:      "Overflowing bin",
		}, nil)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/residents/res-1/reports/abcdefgh/submit", nil))

		if !strings.Contains(rec.Body.String(), "Overflowing bin - abcde") {
			t.Fatalf("expected issue label, body:\n%s", rec.Body.String())
		}
	})

	t.Run("not found redirects to schedule", func(t *testing.T) {
		ts := newTestService(t)
		ts.loader.EXPECT().LoadReport(gomock.Any(), "res-1", "missing").
			Return(nil, fmt.Errorf("%w: res-1/missing", types.ErrReportNotFound))

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/residents/res-1/reports/missing/submit", nil))

		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/schedule" {
			t.Fatalf("expected redirect to schedule, got %d %q", rec.Code, rec.Header().Get("Location"))
		}

		ts.query.EXPECT().FetchPending(gomock.Any(), types.DistrictArau).Return([]*types.ReportView{}, nil)
		req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
		req.AddCookie(flashCookie(t, rec))
		next := ts.do(req)
		if !strings.Contains(next.Body.String(), "No such document found!") {
			t.Fatalf("expected flash on schedule, body:\n%s", next.Body.String())
		}
	})
}

func TestHandlePostSubmit(t *testing.T) {
	t.Run("success resets to home", func(t *testing.T) {
		ts := newTestService(t)
		photo := []byte("jpeg bytes")

		ts.completer.EXPECT().CompleteReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input reports.CompleteReportInput) (*types.ReportCompletion, error) {
				if input.ResidentID != "res-1" || input.ReportID != "abcdefgh" {
					t.Errorf("unexpected keys %q/%q", input.ResidentID, input.ReportID)
				}
				if input.Weight != "12.5" || !input.Confirmed {
					t.Errorf("unexpected input %+v", input)
				}
				if input.Photo == nil || input.Photo.FileName != "after.jpg" {
					t.Fatalf("expected photo, got %+v", input.Photo)
				}
				got, _ := io.ReadAll(input.Photo.Body)
				if !bytes.Equal(got, photo) {
					t.Errorf("photo body = %q", got)
				}
				return &types.ReportCompletion{Status: types.ReportStatusSuccess}, nil
			})

		body, contentType := multipartBody(t, map[string]string{"weight": "12.5", "confirm": "yes"}, photo)
		req := httptest.NewRequest(http.MethodPost, "/residents/res-1/reports/abcdefgh/submit", body)
		req.Header.Set("Content-Type", contentType)

		rec := ts.do(req)

		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
			t.Fatalf("expected redirect home, got %d %q", rec.Code, rec.Header().Get("Location"))
		}

		home := httptest.NewRequest(http.MethodGet, "/", nil)
		home.AddCookie(flashCookie(t, rec))
		next := ts.do(home)
		if !strings.Contains(next.Body.String(), submitSuccessMessage) {
			t.Fatalf("expected success flash, body:\n%s", next.Body.String())
		}
	})

	t.Run("declined renders confirmation", func(t *testing.T) {
		ts := newTestService(t)
		ts.completer.EXPECT().CompleteReport(gomock.Any(), gomock.Any()).Return(nil, types.ErrSubmissionDeclined)
		ts.loader.EXPECT().LoadReport(gomock.Any(), "res-1", "abcdefgh").Return(&types.Report{
			ResidentID: "res-1",
			ID:         "abcdefgh",
			Issue:      "Overflowing bin",
		}, nil)

		body, contentType := multipartBody(t, map[string]string{"weight": "3"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/residents/res-1/reports/abcdefgh/submit", body)
		req.Header.Set("Content-Type", contentType)

		rec := ts.do(req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Are you sure you want to submit this report?") {
			t.Fatalf("expected confirmation prompt, body:\n%s", rec.Body.String())
		}
	})

	t.Run("photo must be attached again after confirmation prompt", func(t *testing.T) {
		ts := newTestService(t)
		photo := []byte("jpeg bytes")
		report := &types.Report{ResidentID: "res-1", ID: "abcdefgh", Issue: "Overflowing bin"}

		gomock.InOrder(
			ts.completer.EXPECT().CompleteReport(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, input reports.CompleteReportInput) (*types.ReportCompletion, error) {
					if input.Photo == nil {
						t.Errorf("expected the unconfirmed POST to carry the photo")
					}
					return nil, types.ErrSubmissionDeclined
				}),
			ts.completer.EXPECT().CompleteReport(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, input reports.CompleteReportInput) (*types.ReportCompletion, error) {
					if !input.Confirmed || input.Photo == nil {
						t.Errorf("confirmed POST lost its photo: %+v", input)
					}
					return &types.ReportCompletion{Status: types.ReportStatusSuccess}, nil
				}),
		)
		ts.loader.EXPECT().LoadReport(gomock.Any(), "res-1", "abcdefgh").Return(report, nil)

		body, contentType := multipartBody(t, map[string]string{"weight": "7"}, photo)
		req := httptest.NewRequest(http.MethodPost, "/residents/res-1/reports/abcdefgh/submit", body)
		req.Header.Set("Content-Type", contentType)

		rec := ts.do(req)

		page := rec.Body.String()
		if !strings.Contains(page, "Please attach the photo again.") {
			t.Fatalf("expected reattach notice, body:\n%s", page)
		}
		if !strings.Contains(page, `capture="environment" required`) {
			t.Fatalf("expected the photo input to be required, body:\n%s", page)
		}

		body, contentType = multipartBody(t, map[string]string{"weight": "7", "confirm": "yes"}, photo)
		req = httptest.NewRequest(http.MethodPost, "/residents/res-1/reports/abcdefgh/submit", body)
		req.Header.Set("Content-Type", contentType)

		rec = ts.do(req)

		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
			t.Fatalf("expected redirect home, got %d %q", rec.Code, rec.Header().Get("Location"))
		}
	})

	t.Run("confirmation checkbox is required in the form", func(t *testing.T) {
		ts := newTestService(t)
		ts.loader.EXPECT().LoadReport(gomock.Any(), "res-1", "abcdefgh").Return(&types.Report{
			ResidentID: "res-1",
			ID:         "abcdefgh",
			Issue:      "Overflowing bin",
		}, nil)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/residents/res-1/reports/abcdefgh/submit", nil))

		if !strings.Contains(rec.Body.String(), `name="confirm" value="yes" required`) {
			t.Fatalf("expected a required confirm checkbox, body:\n%s", rec.Body.String())
		}
		if strings.Contains(rec.Body.String(), "Please attach the photo again.") {
			t.Fatalf("reattach notice shown on first load")
		}
	})

	t.Run("failure redirects back to form", func(t *testing.T) {
		ts := newTestService(t)
		ts.completer.EXPECT().CompleteReport(gomock.Any(), gomock.Any()).Return(nil, types.ErrWeightRequired)

		form := url.Values{"confirm": {"yes"}}
		req := httptest.NewRequest(http.MethodPost, "/residents/res-1/reports/abcdefgh/submit", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := ts.do(req)

		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/residents/res-1/reports/abcdefgh/submit" {
			t.Fatalf("expected redirect back, got %d %q", rec.Code, rec.Header().Get("Location"))
		}
		flashCookie(t, rec)
	})
}

func TestAPIReports(t *testing.T) {
	ts := newTestService(t)
	ts.query.EXPECT().FetchPending(gomock.Any(), types.DistrictPadangBesar).Return(sampleViews(), nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/reports?district=Padang+Besar&seq=7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("Content-Type = %q", ct)
	}

	var resp reportsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Seq != 7 || len(resp.Reports) != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAPIPins(t *testing.T) {
	ts := newTestService(t)
	ts.query.EXPECT().FetchPending(gomock.Any(), types.DistrictAll).Return(sampleViews(), nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/pins?seq=3", nil))

	var resp pinsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Seq != 3 || len(resp.Pins) != 1 || resp.Pins[0].ShortID != "abcde" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAPIErrors(t *testing.T) {
	t.Run("unknown district", func(t *testing.T) {
		ts := newTestService(t)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/reports?district=Nowhere", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp apiError
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Error.Message != "Please select a valid district." {
			t.Fatalf("unexpected error %+v", resp.Error)
		}
	})

	t.Run("report not found", func(t *testing.T) {
		ts := newTestService(t)
		ts.loader.EXPECT().LoadReport(gomock.Any(), "res-1", "nope").
			Return(nil, fmt.Errorf("%w: res-1/nope", types.ErrReportNotFound))

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/residents/res-1/reports/nope", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("unreadable submission form", func(t *testing.T) {
		ts := newTestService(t)

		req := httptest.NewRequest(http.MethodPost, "/api/residents/res-1/reports/abcdefgh/complete", strings.NewReader("--broken"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=nope")

		rec := ts.do(req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp apiError
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.Contains(resp.Error.Message, "submission could not be read") {
			t.Fatalf("unexpected error %+v", resp.Error)
		}
	})

	t.Run("upload failure", func(t *testing.T) {
		ts := newTestService(t)
		ts.completer.EXPECT().CompleteReport(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: bucket down", types.ErrUploadFailed))

		body, contentType := multipartBody(t, map[string]string{"weight": "1", "confirm": "yes"}, []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/api/residents/res-1/reports/abcdefgh/complete", body)
		req.Header.Set("Content-Type", contentType)

		rec := ts.do(req)

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}

func TestAPIComplete(t *testing.T) {
	ts := newTestService(t)
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	ts.completer.EXPECT().CompleteReport(gomock.Any(), gomock.Any()).Return(&types.ReportCompletion{
		WeightWaste:    "4",
		Status:         types.ReportStatusSuccess,
		DateCollection: at,
	}, nil)

	body, contentType := multipartBody(t, map[string]string{"weight": "4", "confirm": "yes"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/residents/res-1/reports/abcdefgh/complete", body)
	req.Header.Set("Content-Type", contentType)

	rec := ts.do(req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var completion types.ReportCompletion
	if err := json.Unmarshal(rec.Body.Bytes(), &completion); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if completion.Status != types.ReportStatusSuccess || !completion.DateCollection.Equal(at) {
		t.Fatalf("unexpected completion %+v", completion)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{types.ErrWeightRequired, http.StatusBadRequest},
		{types.ErrInvalidNavigation, http.StatusBadRequest},
		{fmt.Errorf("%w: x", types.ErrReportNotFound), http.StatusNotFound},
		{types.ErrSubmissionDeclined, http.StatusConflict},
		{fmt.Errorf("%w: x", types.ErrUploadFailed), http.StatusBadGateway},
		{fmt.Errorf("%w: x", types.ErrWriteFailed), http.StatusBadGateway},
		{fmt.Errorf("%w: x", types.ErrFetchFailed), http.StatusBadGateway},
		{io.EOF, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			if got := statusFor(tc.err); got != tc.want {
				t.Fatalf("statusFor() = %d, want %d", got, tc.want)
			}
		})
	}
}
