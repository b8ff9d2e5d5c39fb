package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// RecordServiceName is the fully-qualified name of the record service.
const RecordServiceName = "mealwiser.v1.RecordService"

// Procedure paths of the record service.
const (
	RecordServiceListEmployeesProcedure   = "/mealwiser.v1.RecordService/ListEmployees"
	RecordServiceCreateEmployeeProcedure  = "/mealwiser.v1.RecordService/CreateEmployee"
	RecordServiceDeleteEmployeeProcedure  = "/mealwiser.v1.RecordService/DeleteEmployee"
	RecordServiceListDepositsProcedure    = "/mealwiser.v1.RecordService/ListDeposits"
	RecordServiceCreateDepositProcedure   = "/mealwiser.v1.RecordService/CreateDeposit"
	RecordServiceDeleteDepositProcedure   = "/mealwiser.v1.RecordService/DeleteDeposit"
	RecordServiceListMealEntriesProcedure = "/mealwiser.v1.RecordService/ListMealEntries"
	RecordServiceCreateMealEntryProcedure = "/mealwiser.v1.RecordService/CreateMealEntry"
	RecordServiceUpdateMealEntryProcedure = "/mealwiser.v1.RecordService/UpdateMealEntry"
	RecordServiceDeleteMealEntryProcedure = "/mealwiser.v1.RecordService/DeleteMealEntry"
	RecordServiceListMealCostsProcedure   = "/mealwiser.v1.RecordService/ListMealCosts"
	RecordServiceCreateMealCostProcedure  = "/mealwiser.v1.RecordService/CreateMealCost"
	RecordServiceDeleteMealCostProcedure  = "/mealwiser.v1.RecordService/DeleteMealCost"
)

// RecordServiceHandler is implemented by the server side of the record service.
type RecordServiceHandler interface {
	ListEmployees(context.Context, *connect.Request[ListEmployeesRequest]) (*connect.Response[ListEmployeesResponse], error)
	CreateEmployee(context.Context, *connect.Request[CreateEmployeeRequest]) (*connect.Response[CreateEmployeeResponse], error)
	DeleteEmployee(context.Context, *connect.Request[DeleteRequest]) (*connect.Response[DeleteResponse], error)
	ListDeposits(context.Context, *connect.Request[ListDepositsRequest]) (*connect.Response[ListDepositsResponse], error)
	CreateDeposit(context.Context, *connect.Request[CreateDepositRequest]) (*connect.Response[CreateDepositResponse], error)
	DeleteDeposit(context.Context, *connect.Request[DeleteRequest]) (*connect.Response[DeleteResponse], error)
	ListMealEntries(context.Context, *connect.Request[ListMealEntriesRequest]) (*connect.Response[ListMealEntriesResponse], error)
	CreateMealEntry(context.Context, *connect.Request[CreateMealEntryRequest]) (*connect.Response[CreateMealEntryResponse], error)
	UpdateMealEntry(context.Context, *connect.Request[UpdateMealEntryRequest]) (*connect.Response[UpdateMealEntryResponse], error)
	DeleteMealEntry(context.Context, *connect.Request[DeleteRequest]) (*connect.Response[DeleteResponse], error)
	ListMealCosts(context.Context, *connect.Request[ListMealCostsRequest]) (*connect.Response[ListMealCostsResponse], error)
	CreateMealCost(context.Context, *connect.Request[CreateMealCostRequest]) (*connect.Response[CreateMealCostResponse], error)
	DeleteMealCost(context.Context, *connect.Request[DeleteRequest]) (*connect.Response[DeleteResponse], error)
}

// NewRecordServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewRecordServiceHandler(svc RecordServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(RecordServiceListEmployeesProcedure, connect.NewUnaryHandler(RecordServiceListEmployeesProcedure, svc.ListEmployees, opts...))
	mux.Handle(RecordServiceCreateEmployeeProcedure, connect.NewUnaryHandler(RecordServiceCreateEmployeeProcedure, svc.CreateEmployee, opts...))
	mux.Handle(RecordServiceDeleteEmployeeProcedure, connect.NewUnaryHandler(RecordServiceDeleteEmployeeProcedure, svc.DeleteEmployee, opts...))
	mux.Handle(RecordServiceListDepositsProcedure, connect.NewUnaryHandler(RecordServiceListDepositsProcedure, svc.ListDeposits, opts...))
	mux.Handle(RecordServiceCreateDepositProcedure, connect.NewUnaryHandler(RecordServiceCreateDepositProcedure, svc.CreateDeposit, opts...))
	mux.Handle(RecordServiceDeleteDepositProcedure, connect.NewUnaryHandler(RecordServiceDeleteDepositProcedure, svc.DeleteDeposit, opts...))
	mux.Handle(RecordServiceListMealEntriesProcedure, connect.NewUnaryHandler(RecordServiceListMealEntriesProcedure, svc.ListMealEntries, opts...))
	mux.Handle(RecordServiceCreateMealEntryProcedure, connect.NewUnaryHandler(RecordServiceCreateMealEntryProcedure, svc.CreateMealEntry, opts...))
	mux.Handle(RecordServiceUpdateMealEntryProcedure, connect.NewUnaryHandler(RecordServiceUpdateMealEntryProcedure, svc.UpdateMealEntry, opts...))
	mux.Handle(RecordServiceDeleteMealEntryProcedure, connect.NewUnaryHandler(RecordServiceDeleteMealEntryProcedure, svc.DeleteMealEntry, opts...))
	mux.Handle(RecordServiceListMealCostsProcedure, connect.NewUnaryHandler(RecordServiceListMealCostsProcedure, svc.ListMealCosts, opts...))
	mux.Handle(RecordServiceCreateMealCostProcedure, connect.NewUnaryHandler(RecordServiceCreateMealCostProcedure, svc.CreateMealCost, opts...))
	mux.Handle(RecordServiceDeleteMealCostProcedure, connect.NewUnaryHandler(RecordServiceDeleteMealCostProcedure, svc.DeleteMealCost, opts...))

	return "/" + RecordServiceName + "/", mux
}

// RecordServiceClient is a client for the record service.
type RecordServiceClient struct {
	listEmployees   *connect.Client[ListEmployeesRequest, ListEmployeesResponse]
	createEmployee  *connect.Client[CreateEmployeeRequest, CreateEmployeeResponse]
	deleteEmployee  *connect.Client[DeleteRequest, DeleteResponse]
	listDeposits    *connect.Client[ListDepositsRequest, ListDepositsResponse]
	createDeposit   *connect.Client[CreateDepositRequest, CreateDepositResponse]
	deleteDeposit   *connect.Client[DeleteRequest, DeleteResponse]
	listMealEntries *connect.Client[ListMealEntriesRequest, ListMealEntriesResponse]
	createMealEntry *connect.Client[CreateMealEntryRequest, CreateMealEntryResponse]
	updateMealEntry *connect.Client[UpdateMealEntryRequest, UpdateMealEntryResponse]
	deleteMealEntry *connect.Client[DeleteRequest, DeleteResponse]
	listMealCosts   *connect.Client[ListMealCostsRequest, ListMealCostsResponse]
	createMealCost  *connect.Client[CreateMealCostRequest, CreateMealCostResponse]
	deleteMealCost  *connect.Client[DeleteRequest, DeleteResponse]
}

// NewRecordServiceClient constructs a client for the record service at baseURL
// (for example, http://localhost:8080).
func NewRecordServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *RecordServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &RecordServiceClient{
		listEmployees:   connect.NewClient[ListEmployeesRequest, ListEmployeesResponse](httpClient, baseURL+RecordServiceListEmployeesProcedure, opts...),
		createEmployee:  connect.NewClient[CreateEmployeeRequest, CreateEmployeeResponse](httpClient, baseURL+RecordServiceCreateEmployeeProcedure, opts...),
		deleteEmployee:  connect.NewClient[DeleteRequest, DeleteResponse](httpClient, baseURL+RecordServiceDeleteEmployeeProcedure, opts...),
		listDeposits:    connect.NewClient[ListDepositsRequest, ListDepositsResponse](httpClient, baseURL+RecordServiceListDepositsProcedure, opts...),
		createDeposit:   connect.NewClient[CreateDepositRequest, CreateDepositResponse](httpClient, baseURL+RecordServiceCreateDepositProcedure, opts...),
		deleteDeposit:   connect.NewClient[DeleteRequest, DeleteResponse](httpClient, baseURL+RecordServiceDeleteDepositProcedure, opts...),
		listMealEntries: connect.NewClient[ListMealEntriesRequest, ListMealEntriesResponse](httpClient, baseURL+RecordServiceListMealEntriesProcedure, opts...),
		createMealEntry: connect.NewClient[CreateMealEntryRequest, CreateMealEntryResponse](httpClient, baseURL+RecordServiceCreateMealEntryProcedure, opts...),
		updateMealEntry: connect.NewClient[UpdateMealEntryRequest, UpdateMealEntryResponse](httpClient, baseURL+RecordServiceUpdateMealEntryProcedure, opts...),
		deleteMealEntry: connect.NewClient[DeleteRequest, DeleteResponse](httpClient, baseURL+RecordServiceDeleteMealEntryProcedure, opts...),
		listMealCosts:   connect.NewClient[ListMealCostsRequest, ListMealCostsResponse](httpClient, baseURL+RecordServiceListMealCostsProcedure, opts...),
		createMealCost:  connect.NewClient[CreateMealCostRequest, CreateMealCostResponse](httpClient, baseURL+RecordServiceCreateMealCostProcedure, opts...),
		deleteMealCost:  connect.NewClient[DeleteRequest, DeleteResponse](httpClient, baseURL+RecordServiceDeleteMealCostProcedure, opts...),
	}
}

func (c *RecordServiceClient) ListEmployees(ctx context.Context, req *connect.Request[ListEmployeesRequest]) (*connect.Response[ListEmployeesResponse], error) {
	return c.listEmployees.CallUnary(ctx, req)
}

func (c *RecordServiceClient) CreateEmployee(ctx context.Context, req *connect.Request[CreateEmployeeRequest]) (*connect.Response[CreateEmployeeResponse], error) {
	return c.createEmployee.CallUnary(ctx, req)
}

func (c *RecordServiceClient) DeleteEmployee(ctx context.Context, req *connect.Request[DeleteRequest]) (*connect.Response[DeleteResponse], error) {
	return c.deleteEmployee.CallUnary(ctx, req)
}

func (c *RecordServiceClient) ListDeposits(ctx context.Context, req *connect.Request[ListDepositsRequest]) (*connect.Response[ListDepositsResponse], error) {
	return c.listDeposits.CallUnary(ctx, req)
}

func (c *RecordServiceClient) CreateDeposit(ctx context.Context, req *connect.Request[CreateDepositRequest]) (*connect.Response[CreateDepositResponse], error) {
	return c.createDeposit.CallUnary(ctx, req)
}

func (c *RecordServiceClient) DeleteDeposit(ctx context.Context, req *connect.Request[DeleteRequest]) (*connect.Response[DeleteResponse], error) {
	return c.deleteDeposit.CallUnary(ctx, req)
}

func (c *RecordServiceClient) ListMealEntries(ctx context.Context, req *connect.Request[ListMealEntriesRequest]) (*connect.Response[ListMealEntriesResponse], error) {
	return c.listMealEntries.CallUnary(ctx, req)
}

func (c *RecordServiceClient) CreateMealEntry(ctx context.Context, req *connect.Request[CreateMealEntryRequest]) (*connect.Response[CreateMealEntryResponse], error) {
	return c.createMealEntry.CallUnary(ctx, req)
}

func (c *RecordServiceClient) UpdateMealEntry(ctx context.Context, req *connect.Request[UpdateMealEntryRequest]) (*connect.Response[UpdateMealEntryResponse], error) {
	return c.updateMealEntry.CallUnary(ctx, req)
}

func (c *RecordServiceClient) DeleteMealEntry(ctx context.Context, req *connect.Request[DeleteRequest]) (*connect.Response[DeleteResponse], error) {
	return c.deleteMealEntry.CallUnary(ctx, req)
}

func (c *RecordServiceClient) ListMealCosts(ctx context.Context, req *connect.Request[ListMealCostsRequest]) (*connect.Response[ListMealCostsResponse], error) {
	return c.listMealCosts.CallUnary(ctx, req)
}

func (c *RecordServiceClient) CreateMealCost(ctx context.Context, req *connect.Request[CreateMealCostRequest]) (*connect.Response[CreateMealCostResponse], error) {
	return c.createMealCost.CallUnary(ctx, req)
}

func (c *RecordServiceClient) DeleteMealCost(ctx context.Context, req *connect.Request[DeleteRequest]) (*connect.Response[DeleteResponse], error) {
	return c.deleteMealCost.CallUnary(ctx, req)
}
