package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"vetapi/internal/model"
	"vetapi/internal/service"
	serviceMocks "vetapi/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func jsonRequest(method, target string, body any) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	return req
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreatePatient(t *testing.T) {
	mockSvc := new(serviceMocks.MockPatientService)
	app := fiber.New()
	app.Post("/patients", CreatePatient(mockSvc))

	t.Run("created", func(t *testing.T) {
		stored := &model.Patient{ID: uuid.New().String(), Name: "Bruno"}
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Patient) bool {
			return p.Name == "Bruno"
		})).Return(stored, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/patients", fiber.Map{"name": "Bruno"}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Patient
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, stored.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation error lists every missing field", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, &service.ValidationError{Fields: []string{"species", "age", "client"}}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/patients", fiber.Map{"name": "Bruno"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
		assert.ElementsMatch(t, []string{"species", "age", "client"}, res.Error.Fields)
	})

	t.Run("unknown client is 404", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, &service.NotFoundError{Resource: "client"}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/patients", fiber.Map{"name": "Bruno"}))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("taken natural key is 409", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, &service.ConflictError{Message: "petId or registrationNumber already in use"}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/patients", fiber.Map{"name": "Bruno"}))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "CONFLICT", decodeError(t, resp).Error.Code)
	})

	t.Run("service failure is 500 without detail", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection refused")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/patients", fiber.Map{"name": "Bruno"}))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		assert.NotContains(t, res.Error.Message, "connection refused")
	})
}

func TestGetPatient(t *testing.T) {
	mockSvc := new(serviceMocks.MockPatientService)
	app := fiber.New()
	app.Get("/patients/:id", GetPatient(mockSvc))

	t.Run("found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(&model.Patient{ID: id}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/patients/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, &service.NotFoundError{Resource: "patient"}).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/patients/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/patients/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})
}

func TestGetPatientByIdentifier(t *testing.T) {
	mockSvc := new(serviceMocks.MockPatientService)
	app := fiber.New()
	app.Get("/patients/identifier/:identifier", GetPatientByIdentifier(mockSvc))

	// Natural keys are not uuids, so this route takes any identifier.
	mockSvc.On("GetByIdentifier", mock.Anything, "PET-001").
		Return(&model.Patient{ID: uuid.New().String(), PetID: "PET-001"}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/patients/identifier/PET-001", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestUploadPatientAttachments(t *testing.T) {
	mockSvc := new(serviceMocks.MockPatientService)
	app := fiber.New()
	app.Post("/patients/:id/attachments", UploadPatientAttachments(mockSvc))

	id := uuid.New().String()

	t.Run("uploads the posted files", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("attachments", "xray.png")
		part.Write([]byte("image-bytes"))
		writer.Close()

		mockSvc.On("UploadAttachments", mock.Anything, id, mock.MatchedBy(func(uploads []service.FileUpload) bool {
			return len(uploads) == 1 && uploads[0].FileName == "xray.png"
		})).Return(&model.Patient{ID: id}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/patients/"+id+"/attachments", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no files", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/patients/"+id+"/attachments", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})
}

func TestCreateMedicalRecord(t *testing.T) {
	mockSvc := new(serviceMocks.MockMedicalRecordService)
	app := fiber.New()
	app.Post("/medical-records", CreateMedicalRecord(mockSvc))

	t.Run("scalar clinical text becomes a one-element list", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.MedicalRecordInput) bool {
			return in.Identifier == "PET-001" &&
				len(in.Record.Diagnosis) == 1 && in.Record.Diagnosis[0] == "Gastritis" &&
				len(in.Record.TreatmentPlan) == 2
		})).Return(&model.MedicalRecord{ID: uuid.New().String()}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/medical-records", fiber.Map{
			"patient":       "PET-001",
			"diagnosis":     "Gastritis",
			"treatmentPlan": []string{"fluids", "antiemetics"},
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("multipart body carries record data and files", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.WriteField("data", `{"patient":"PET-001","diagnosis":"Gastritis"}`)
		part, _ := writer.CreateFormFile(model.FileTypeConsentForms, "consent.pdf")
		part.Write([]byte("pdf-bytes"))
		writer.Close()

		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.MedicalRecordInput) bool {
			files := in.Files[model.FileTypeConsentForms]
			return in.Identifier == "PET-001" && len(files) == 1 && files[0].FileName == "consent.pdf"
		})).Return(&model.MedicalRecord{ID: uuid.New().String()}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/medical-records", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing diagnosis is 400 naming the field", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, &service.ValidationError{Fields: []string{"diagnosis"}}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/medical-records", fiber.Map{"patient": "PET-001"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Contains(t, res.Error.Fields, "diagnosis")
	})
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockStaffService)
	app := fiber.New()
	app.Post("/staffs/login", Login(mockSvc))

	t.Run("success returns token and staff", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "sita", "s3cret").Return(&service.LoginResult{
			Token: "signed-token",
			Staff: &model.Staff{ID: uuid.New().String(), UserID: "sita"},
		}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/staffs/login", fiber.Map{
			"userId": "sita", "password": "s3cret",
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.LoginResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "signed-token", result.Token)
	})

	t.Run("bad credentials are 401 with one indistinct message", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, service.ErrInvalidCredentials).Twice()

		respUnknown, _ := app.Test(jsonRequest(http.MethodPost, "/staffs/login", fiber.Map{
			"userId": "nobody", "password": "s3cret",
		}))
		respWrong, _ := app.Test(jsonRequest(http.MethodPost, "/staffs/login", fiber.Map{
			"userId": "sita", "password": "wrong",
		}))

		assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
		assert.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
		assert.Equal(t, decodeError(t, respUnknown).Error, decodeError(t, respWrong).Error)
	})
}

func TestRouting(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})
	RegisterRoutes(app, db, nil, Services{
		Patients: new(serviceMocks.MockPatientService),
		Staffs:   new(serviceMocks.MockStaffService),
	})

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})
}

func TestTextListNormalization(t *testing.T) {
	var req medicalRecordRequest
	err := json.Unmarshal([]byte(`{"diagnosis":"Gastritis","clinicalSigns":["lethargy","vomiting"],"treatment":""}`), &req)
	require.NoError(t, err)

	assert.Equal(t, textList{"Gastritis"}, req.Diagnosis)
	assert.Equal(t, textList{"lethargy", "vomiting"}, req.ClinicalSigns)
	assert.Empty(t, req.Treatment)

	rec := req.toModel()
	assert.Equal(t, []string{"Gastritis"}, rec.Diagnosis)
}

func TestSupplierFieldParsing(t *testing.T) {
	id := uuid.New().String()

	var byID inventoryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Syringe","supplier":"`+id+`"}`), &byID))
	item, sp := byID.toModel()
	assert.Equal(t, id, item.Supplier)
	assert.Nil(t, sp)

	var byName inventoryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Syringe","supplier":"Acme"}`), &byName))
	item, sp = byName.toModel()
	assert.Empty(t, item.Supplier)
	require.NotNil(t, sp)
	assert.Equal(t, "Acme", sp.Name)

	var byObject inventoryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Syringe","supplier":{"name":"Acme","phone":"1"}}`), &byObject))
	_, sp = byObject.toModel()
	require.NotNil(t, sp)
	assert.Equal(t, "1", sp.Phone)
}
