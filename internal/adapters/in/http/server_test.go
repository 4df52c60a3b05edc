package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const customerBody = `{"id":"C001","name":"John Smith","dob":"01/01/1990",` +
	`"address":"123 Main St, Sydney, NSW 2000, Australia","phone":"0412 345 678","email":"john@example.com"}`

type ServerTestSuite struct {
	suite.Suite
	e *echo.Echo
}

func (suite *ServerTestSuite) SetupTest() {
	app, err := cmd.NewCompositionRoot(cmd.DefaultConfig(), slog.New(slog.DiscardHandler))
	suite.Require().NoError(err)
	suite.e = app.NewEcho()
}

func (suite *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) decode(rec *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
}

func (suite *ServerTestSuite) seed() {
	suite.Require().Equal(http.StatusCreated,
		suite.do(http.MethodPost, "/api/v1/vehicles", `{"id":"V001","type":"Truck","capacity":500}`).Code)
	suite.Require().Equal(http.StatusCreated,
		suite.do(http.MethodPost, "/api/v1/customers", customerBody).Code)
	suite.Require().Equal(http.StatusCreated,
		suite.do(http.MethodPost, "/api/v1/shipments",
			`{"id":"S001","origin":"Sydney","destination":"Melbourne","weight":"100",`+
				`"vehicle_id":"V001","customer_id":"C001"}`).Code)
}

func (suite *ServerTestSuite) expectError(rec *httptest.ResponseRecorder, status int) httpin.Error {
	suite.Equal(status, rec.Code)
	var body httpin.Error
	suite.decode(rec, &body)
	suite.Equal(status, body.Code)
	suite.NotEmpty(body.Message)
	return body
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
	suite.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

func (suite *ServerTestSuite) TestCreateVehicleAcceptsNumericAndTextualCapacity() {
	rec := suite.do(http.MethodPost, "/api/v1/vehicles", `{"id":"V001","type":"Van","capacity":"750"}`)

	suite.Equal(http.StatusCreated, rec.Code)
	var v httpin.Vehicle
	suite.decode(rec, &v)
	suite.Equal(httpin.Vehicle{ID: "V001", Type: "Van", Capacity: 750}, v)

	rec = suite.do(http.MethodPost, "/api/v1/vehicles", `{"id":"V002","type":"Car","capacity":4}`)
	suite.Equal(http.StatusCreated, rec.Code)
}

func (suite *ServerTestSuite) TestErrorStatusByRule() {
	suite.seed()

	// duplicate identifier
	suite.expectError(
		suite.do(http.MethodPost, "/api/v1/vehicles", `{"id":"V001","type":"Car","capacity":5}`),
		http.StatusConflict,
	)
	// identifier format
	suite.expectError(
		suite.do(http.MethodPost, "/api/v1/vehicles", `{"id":"X1","type":"Car","capacity":5}`),
		http.StatusBadRequest,
	)
	// field value
	suite.expectError(
		suite.do(http.MethodPost, "/api/v1/vehicles", `{"id":"V002","type":"Plane","capacity":5}`),
		http.StatusBadRequest,
	)
	// unresolved reference
	body := suite.expectError(
		suite.do(http.MethodPost, "/api/v1/shipments",
			`{"id":"S002","origin":"A","destination":"B","weight":1,"vehicle_id":"V404","customer_id":"C001"}`),
		http.StatusUnprocessableEntity,
	)
	suite.Contains(body.Message, "V404")
	// not found
	suite.expectError(suite.do(http.MethodGet, "/api/v1/customers/C404", ""), http.StatusNotFound)
	// malformed body
	suite.expectError(suite.do(http.MethodPost, "/api/v1/vehicles", `{"id":`), http.StatusBadRequest)
	// unknown route
	suite.expectError(suite.do(http.MethodGet, "/api/v1/planes", ""), http.StatusNotFound)
}

func (suite *ServerTestSuite) TestDeliveryFlow() {
	suite.seed()

	// When the shipment is delivered for the first time
	rec := suite.do(http.MethodPost, "/api/v1/shipments/S001/delivery", "")

	// Then
	suite.Equal(http.StatusOK, rec.Code)
	var delivery httpin.Delivery
	suite.decode(rec, &delivery)
	suite.Equal(httpin.Delivery{ID: "S001", Outcome: "FirstTimeDelivered"}, delivery)

	rec = suite.do(http.MethodGet, "/api/v1/shipments/S001/status", "")
	suite.Equal(http.StatusOK, rec.Code)
	var status httpin.ShipmentStatus
	suite.decode(rec, &status)
	suite.Equal("Delivered", status.Status)
	suite.NotNil(status.DeliveredAt)

	// When it is delivered again
	rec = suite.do(http.MethodPost, "/api/v1/shipments/S001/delivery", "")

	// Then
	suite.expectError(rec, http.StatusConflict)

	// And an unknown shipment is not found
	suite.expectError(suite.do(http.MethodPost, "/api/v1/shipments/S404/delivery", ""), http.StatusNotFound)
}

func (suite *ServerTestSuite) TestUpdateAndRemoveVehicleLeavesDanglingReference() {
	suite.seed()

	rec := suite.do(http.MethodPut, "/api/v1/vehicles/V001", `{"type":"Van","capacity":900}`)
	suite.Equal(http.StatusOK, rec.Code)
	var v httpin.Vehicle
	suite.decode(rec, &v)
	suite.Equal(httpin.Vehicle{ID: "V001", Type: "Van", Capacity: 900}, v)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/vehicles/V001", "").Code)
	suite.expectError(suite.do(http.MethodDelete, "/api/v1/vehicles/V001", ""), http.StatusNotFound)

	rec = suite.do(http.MethodGet, "/api/v1/shipments/S001", "")
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodGet, "/api/v1/audit/dangling-references", "")
	suite.Equal(http.StatusOK, rec.Code)
	var audit httpin.DanglingReferences
	suite.decode(rec, &audit)
	suite.Equal(0, audit.Vehicles)
	suite.Equal([]httpin.DanglingReference{
		{ShipmentID: "S001", Field: "vehicle_id", TargetID: "V001"},
	}, audit.References)
}

func (suite *ServerTestSuite) TestCustomerEndpoints() {
	suite.seed()

	rec := suite.do(http.MethodGet, "/api/v1/customers/C001/shipments", "")
	suite.Equal(http.StatusOK, rec.Code)
	var shipments []httpin.Shipment
	suite.decode(rec, &shipments)
	suite.Len(shipments, 1)
	suite.Equal("In Transit", shipments[0].Status)
	suite.InDelta(100.0, shipments[0].Weight, 1e-9)

	update := strings.Replace(customerBody, `"id":"C001",`, "", 1)
	update = strings.Replace(update, "John Smith", "Jane Smith", 1)
	rec = suite.do(http.MethodPut, "/api/v1/customers/C001", update)
	suite.Equal(http.StatusOK, rec.Code)
	var c httpin.Customer
	suite.decode(rec, &c)
	suite.Equal("Jane Smith", c.Name)

	rec = suite.do(http.MethodGet, "/api/v1/customers", "")
	suite.Equal(http.StatusOK, rec.Code)
	var customers []httpin.Customer
	suite.decode(rec, &customers)
	suite.Equal([]httpin.Customer{c}, customers)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/customers/C001", "").Code)
	suite.expectError(suite.do(http.MethodGet, "/api/v1/customers/C001/shipments", ""), http.StatusNotFound)
}

func (suite *ServerTestSuite) TestStatsAndShipmentRemoval() {
	suite.seed()

	rec := suite.do(http.MethodGet, "/api/v1/stats", "")
	suite.Equal(http.StatusOK, rec.Code)
	var stats httpin.Stats
	suite.decode(rec, &stats)
	suite.Equal(httpin.Stats{
		Vehicles:  1,
		Customers: 1,
		Shipments: 1,
		InTransit: 1,
		NextIDs:   httpin.NextIDs{Vehicle: "V002", Customer: "C002", Shipment: "S002"},
	}, stats)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/shipments/S001", "").Code)

	rec = suite.do(http.MethodGet, "/api/v1/shipments", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestMetricsExposeAdmissions() {
	suite.seed()
	suite.do(http.MethodPost, "/api/v1/vehicles", `{"id":"V001","type":"Car","capacity":5}`)

	rec := suite.do(http.MethodGet, "/metrics", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `logistics_records_admitted_total{kind="vehicle"} 1`)
	suite.Contains(rec.Body.String(), `logistics_records_rejected_total{kind="vehicle",rule="duplicate_identifier"} 1`)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
