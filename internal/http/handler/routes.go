package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"vetapi/internal/service"
	"vetapi/internal/storage"
)

// Services bundles every service the HTTP surface dispatches to.
type Services struct {
	Clients        service.ClientService
	Patients       service.PatientService
	MedicalRecords service.MedicalRecordService
	Vaccinations   service.VaccinationService
	Surgeries      service.SurgeryService
	BloodReports   service.BloodReportService
	Inventory      service.InventoryService
	Suppliers      service.SupplierService
	Medicines      service.MedicineService
	Sales          service.SaleService
	Appointments   service.AppointmentService
	Staffs         service.StaffService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; every multi-entity write lives in
// the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, store storage.Storage, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/uploads/*", DownloadUpload(store))

	api := app.Group("/api")

	clients := api.Group("/clients")
	clients.Get("/", ListClients(svcs.Clients))
	clients.Post("/", CreateClient(svcs.Clients))
	clients.Get("/:id", GetClient(svcs.Clients))
	clients.Put("/:id", UpdateClient(svcs.Clients))
	clients.Delete("/:id", DeleteClient(svcs.Clients))

	patients := api.Group("/patients")
	patients.Get("/", ListPatients(svcs.Patients))
	patients.Post("/", CreatePatient(svcs.Patients))
	patients.Get("/identifier/:identifier", GetPatientByIdentifier(svcs.Patients))
	patients.Get("/client/:clientId", ListPatientsByClient(svcs.Patients))
	patients.Get("/:id", GetPatient(svcs.Patients))
	patients.Put("/:id", UpdatePatient(svcs.Patients))
	patients.Delete("/:id", DeletePatient(svcs.Patients))
	patients.Post("/:id/attachments", UploadPatientAttachments(svcs.Patients))
	patients.Delete("/:id/attachments/:attachmentId", DeletePatientAttachment(svcs.Patients))
	patients.Get("/:id/attachments/:attachmentId/download", DownloadPatientAttachment(svcs.Patients))

	records := api.Group("/medical-records")
	records.Get("/", ListMedicalRecords(svcs.MedicalRecords))
	records.Post("/", CreateMedicalRecord(svcs.MedicalRecords))
	records.Post("/append", AppendMedicalRecord(svcs.MedicalRecords))
	records.Get("/patient/:patientId", ListMedicalRecordsByPatient(svcs.MedicalRecords))
	for route, fileType := range fileRouteTypes {
		records.Post("/:id/"+route, AddMedicalRecordFiles(svcs.MedicalRecords, fileType))
	}
	records.Patch("/:id/toggle-status", ToggleMedicalRecordStatus(svcs.MedicalRecords))
	records.Get("/:recordId/files/:fileType/:fileId/download", DownloadMedicalRecordFile(svcs.MedicalRecords))
	records.Delete("/:recordId/files/:fileType/:fileId", DeleteMedicalRecordFile(svcs.MedicalRecords))
	records.Get("/:id", GetMedicalRecord(svcs.MedicalRecords))
	records.Put("/:id", UpdateMedicalRecord(svcs.MedicalRecords))
	records.Delete("/:id", DeleteMedicalRecord(svcs.MedicalRecords))

	vaccinations := api.Group("/vaccinations")
	vaccinations.Get("/", ListVaccinations(svcs.Vaccinations))
	vaccinations.Get("/search", SearchVaccinations(svcs.Vaccinations))
	vaccinations.Post("/", CreateVaccination(svcs.Vaccinations))
	vaccinations.Get("/:id", GetVaccination(svcs.Vaccinations))
	vaccinations.Put("/:id", UpdateVaccination(svcs.Vaccinations))
	vaccinations.Delete("/:id", DeleteVaccination(svcs.Vaccinations))

	surgeries := api.Group("/surgeries")
	surgeries.Get("/", ListSurgeries(svcs.Surgeries))
	surgeries.Get("/patient/:patientId", ListSurgeriesByPatient(svcs.Surgeries))
	surgeries.Post("/", CreateSurgery(svcs.Surgeries))
	surgeries.Get("/:id", GetSurgery(svcs.Surgeries))
	surgeries.Put("/:id", UpdateSurgery(svcs.Surgeries))
	surgeries.Delete("/:id", DeleteSurgery(svcs.Surgeries))

	bloodReports := api.Group("/blood-reports")
	bloodReports.Get("/", ListBloodReports(svcs.BloodReports))
	bloodReports.Get("/patient/:patientId", ListBloodReportsByPatient(svcs.BloodReports))
	bloodReports.Post("/", CreateBloodReport(svcs.BloodReports))
	bloodReports.Get("/:id", GetBloodReport(svcs.BloodReports))
	bloodReports.Put("/:id", UpdateBloodReport(svcs.BloodReports))
	bloodReports.Delete("/:id", DeleteBloodReport(svcs.BloodReports))

	inventory := api.Group("/inventory")
	inventory.Get("/", ListInventory(svcs.Inventory))
	inventory.Post("/", CreateInventoryItem(svcs.Inventory))
	inventory.Get("/:id", GetInventoryItem(svcs.Inventory))
	inventory.Put("/:id", UpdateInventoryItem(svcs.Inventory))
	inventory.Delete("/:id", DeleteInventoryItem(svcs.Inventory))

	suppliers := api.Group("/suppliers")
	suppliers.Get("/", ListSuppliers(svcs.Suppliers))
	suppliers.Post("/", CreateSupplier(svcs.Suppliers))
	suppliers.Get("/:id", GetSupplier(svcs.Suppliers))
	suppliers.Put("/:id", UpdateSupplier(svcs.Suppliers))
	suppliers.Delete("/:id", DeleteSupplier(svcs.Suppliers))

	medicines := api.Group("/medicines")
	medicines.Get("/", ListMedicines(svcs.Medicines))
	medicines.Post("/", CreateMedicine(svcs.Medicines))
	medicines.Get("/:id", GetMedicine(svcs.Medicines))
	medicines.Put("/:id", UpdateMedicine(svcs.Medicines))
	medicines.Delete("/:id", DeleteMedicine(svcs.Medicines))

	sales := api.Group("/sales")
	sales.Get("/", ListSales(svcs.Sales))
	sales.Post("/", CreateSale(svcs.Sales))
	sales.Get("/:id", GetSale(svcs.Sales))
	sales.Put("/:id", UpdateSale(svcs.Sales))
	sales.Delete("/:id", DeleteSale(svcs.Sales))

	appointments := api.Group("/appointments")
	appointments.Get("/", ListAppointments(svcs.Appointments))
	appointments.Post("/", CreateAppointment(svcs.Appointments))
	appointments.Get("/:id", GetAppointment(svcs.Appointments))
	appointments.Put("/:id", UpdateAppointment(svcs.Appointments))
	appointments.Delete("/:id", DeleteAppointment(svcs.Appointments))

	staffs := api.Group("/staffs")
	staffs.Get("/", ListStaffs(svcs.Staffs))
	staffs.Post("/", CreateStaff(svcs.Staffs))
	staffs.Post("/login", Login(svcs.Staffs))
	staffs.Get("/:id", GetStaff(svcs.Staffs))
	staffs.Put("/:id", UpdateStaff(svcs.Staffs))
	staffs.Delete("/:id", DeleteStaff(svcs.Staffs))
}
