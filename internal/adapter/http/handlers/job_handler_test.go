package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"workshop_jobs/internal/adapter/http/handlers/mocks"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"customerName":"Ravi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().CreateJob(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateJobInput{})).DoAndReturn(
			func(_ context.Context, input usecase.CreateJobInput) (entities.Job, error) {
				if input.CustomerName != "Ravi Kumar" || input.Vehicle.RegistrationNumber != "KA-01-AB-1234" {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.Job{ID: 1700000000000, Status: entities.JobStatusDraft, CustomerName: input.CustomerName}, nil
			},
		)

		body := `{"vehicle":{"registrationNumber":"KA-01-AB-1234"},"customerName":"Ravi Kumar"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "draft" {
			t.Fatalf("expected draft status, got %v", resp["status"])
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(entities.Job{}, usecase.ErrMissingCustomerName)

		body := `{"vehicle":{"registrationNumber":"KA-01-AB-1234"},"customerName":"   "}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:id", h.GetJob)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/not-a-number", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:id", h.GetJob)

		uc.EXPECT().GetJob(gomock.Any(), int64(42)).Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:id", h.GetJob)

		uc.EXPECT().GetJob(gomock.Any(), int64(42)).Return(entities.Job{ID: 42, Status: entities.JobStatusRepairing}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_ListJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc)

	r := gin.New()
	r.GET("/v1/jobs", h.ListJobs)

	uc.EXPECT().ListJobs(gomock.Any()).Return([]entities.Job{{ID: 1}, {ID: 2}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(resp))
	}
}

func TestJobHandler_StageOperations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("advance success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/advance", h.AdvanceStage)

		uc.EXPECT().AdvanceStage(gomock.Any(), int64(7)).Return(entities.Job{ID: 7, Status: entities.JobStatusPendingCustomer}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("advance on closed job maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/advance", h.AdvanceStage)

		uc.EXPECT().AdvanceStage(gomock.Any(), int64(7)).Return(entities.Job{}, usecase.ErrJobClosed)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("explicit status update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/status", h.UpdateJobStatus)

		uc.EXPECT().UpdateJobStatus(gomock.Any(), int64(7), entities.JobStatusPendingCustomer, "Estimate sent").
			Return(entities.Job{ID: 7, Status: entities.JobStatusPendingCustomer}, nil)

		body := `{"status":"pending_customer","description":"Estimate sent"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/7/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:id/status", h.UpdateJobStatus)

		uc.EXPECT().UpdateJobStatus(gomock.Any(), int64(7), entities.JobStatusPaid, "").
			Return(entities.Job{}, usecase.ErrInvalidTransition)

		body := `{"status":"paid"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/7/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestJobHandler_WorkAndConsumption(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("stop work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/work/stop", h.StopWork)

		uc.EXPECT().StopWork(gomock.Any(), int64(7), 45).Return(entities.Job{ID: 7, ActualLaborMin: 45}, nil)

		body := `{"durationMinutes":45}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/work/stop", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("consumption above quantity maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/consumption", h.LogPartsConsumption)

		uc.EXPECT().LogPartsConsumption(gomock.Any(), int64(7), "REQ-AB12CD34", 5).
			Return(entities.Job{}, usecase.ErrConsumptionExceedsQuantity)

		body := `{"requisitionId":"REQ-AB12CD34","qty":5}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/consumption", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown requisition maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/consumption", h.LogPartsConsumption)

		uc.EXPECT().LogPartsConsumption(gomock.Any(), int64(7), "REQ-MISSING1", 1).
			Return(entities.Job{}, usecase.ErrRequisitionNotFound)

		body := `{"requisitionId":"REQ-MISSING1","qty":1}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/consumption", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestJobHandler_Billing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generate invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/invoice", h.GenerateInvoice)

		uc.EXPECT().GenerateInvoice(gomock.Any(), int64(7), gomock.AssignableToTypeOf(usecase.InvoiceInput{})).DoAndReturn(
			func(_ context.Context, _ int64, input usecase.InvoiceInput) (entities.Job, error) {
				if input.FinalTotal != 15458.0 {
					t.Fatalf("unexpected total: %v", input.FinalTotal)
				}
				return entities.Job{ID: 7, Status: entities.JobStatusReadyBilling}, nil
			},
		)

		body := `{"laborSubtotal":1000,"partsSubtotal":12100,"tax":2358,"finalTotal":15458}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/invoice", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("pay without gateway maps to service unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/invoice/payment", h.PayInvoice)

		uc.EXPECT().PayInvoice(gomock.Any(), int64(7), usecase.PaymentInput{Method: "mercadopago"}).
			Return(entities.Job{}, usecase.ErrPaymentGatewayUnavailable)

		body := `{"method":"mercadopago"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/invoice/payment", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("gateway errors map to provider statuses", func(t *testing.T) {
		cases := []struct {
			name     string
			err      error
			wantCode int
		}{
			{"unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
			{"bad request", usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
			{"invalid users", usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
			{"customer not found", usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIJobUseCase(ctrl)
				h := NewJobHandler(uc)

				r := gin.New()
				r.POST("/v1/jobs/:id/invoice/payment", h.PayInvoice)

				uc.EXPECT().PayInvoice(gomock.Any(), int64(7), gomock.Any()).Return(entities.Job{}, tc.err)

				body := `{"method":"mercadopago"}`
				req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/invoice/payment", bytes.NewBufferString(body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.wantCode {
					t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
				}
			})
		}
	})

	t.Run("unexpected error maps to internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/invoice/payment", h.PayInvoice)

		uc.EXPECT().PayInvoice(gomock.Any(), int64(7), gomock.Any()).Return(entities.Job{}, errors.New("provider down"))

		body := `{"method":"mercadopago"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/invoice/payment", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestJobHandler_DeliveryAndClose(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deliver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/delivery", h.DeliverVehicle)

		uc.EXPECT().DeliverVehicle(gomock.Any(), int64(7), usecase.DeliveryInput{ReceiverName: "Ravi Kumar", PartsReturned: true}).
			Return(entities.Job{ID: 7, Status: entities.JobStatusCompleted}, nil)

		body := `{"receiverName":"Ravi Kumar","partsReturned":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/delivery", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("deliver without receiver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/delivery", h.DeliverVehicle)

		body := `{"partsReturned":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/delivery", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs/:id/close", h.CloseJob)

		uc.EXPECT().CloseJob(gomock.Any(), int64(7)).Return(entities.Job{ID: 7, Status: entities.JobStatusClosed}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/7/close", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
