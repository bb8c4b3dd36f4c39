package store

import (
	"time"

	"github.com/shopspring/decimal"

	"p9e.in/sitehub/models"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// Seed populates the store with the demo dataset used by the dashboards.
// It is safe to call on a fresh store only; collections are replaced whole.
func Seed(s *Store, now time.Time) {
	today := now
	yesterday := now.Add(-24 * time.Hour)
	twoDaysAgo := now.Add(-48 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	s.Sites.Replace([]models.Site{
		{
			ID: "s1", Name: "Mumbai Residential Complex",
			Address: "Andheri West, Mumbai, Maharashtra 400053",
			Status:  models.SiteActive, EnrollmentCode: "SITE-A1",
			Location:     &models.Coordinate{Lat: 19.076, Lon: 72.8777},
			RadiusMeters: 500, CreatedAt: lastWeek,
		},
		{
			ID: "s2", Name: "Pune Industrial Block",
			Address: "Hinjewadi Phase 2, Pune, Maharashtra 411057",
			Status:  models.SiteActive, EnrollmentCode: "SITE-B2",
			Location:     &models.Coordinate{Lat: 18.5913, Lon: 73.7389},
			RadiusMeters: 500, CreatedAt: lastWeek,
		},
		{
			ID: "s3", Name: "Thane Commercial Plaza",
			Address: "Kolshet Road, Thane, Maharashtra 400607",
			Status:  models.SiteActive, EnrollmentCode: "SITE-C3",
			Location:     &models.Coordinate{Lat: 19.2183, Lon: 72.9781},
			RadiusMeters: 500, CreatedAt: lastWeek,
		},
	})

	s.Memberships.Replace(map[string][]string{
		"u1":      {"s1"},
		"u2":      {"s1", "s2"},
		"default": {"s1"},
	})

	s.Attendance.Replace([]models.AttendanceRecord{
		{ID: "a1", UserID: "u1", SiteID: "s1", Timestamp: today, Lat: 19.076, Lon: 72.8777, Address: "Main Gate, Mumbai Residential Complex", Status: models.AttendanceApproved},
		{ID: "a2", UserID: "u2", SiteID: "s1", Timestamp: today, Lat: 19.077, Lon: 72.878, Address: "Block B Entrance, Andheri West", Status: models.AttendancePending},
		{ID: "a3", UserID: "u3", SiteID: "s1", Timestamp: yesterday, Lat: 19.075, Lon: 72.876, Address: "Site Office, Andheri West", Status: models.AttendanceApproved},
		{ID: "a4", UserID: "u4", SiteID: "s1", Timestamp: yesterday, Lat: 19.078, Lon: 72.879, Address: "Warehouse Gate, Andheri West", Status: models.AttendancePending},
		{ID: "a5", UserID: "u5", SiteID: "s1", Timestamp: twoDaysAgo, Lat: 19.076, Lon: 72.8777, Address: "Main Gate, Mumbai Residential Complex", Status: models.AttendanceApproved},
	})

	s.MaterialRequests.Replace([]models.MaterialRequest{
		{ID: "mr1", SiteID: "s1", RequestedBy: "Priya Mehta", RequestedByRole: models.RoleJuniorEngineer, MaterialName: "OPC Cement Grade 53", Quantity: dec(250), Unit: "bags", Rate: decPtr(380), Priority: models.PriorityHigh, Status: models.MaterialPending, Reason: "Urgent: Block A foundation casting scheduled tomorrow", Timestamp: today},
		{ID: "mr2", SiteID: "s1", RequestedBy: "Arjun Desai", RequestedByRole: models.RoleJuniorEngineer, MaterialName: "TMT Steel Bars 12mm", Quantity: dec(800), Unit: "kg", Rate: decPtr(65), Priority: models.PriorityHigh, Status: models.MaterialPending, Reason: "Beam reinforcement work in progress", Timestamp: today},
		{ID: "mr3", SiteID: "s1", RequestedBy: "Anjali Joshi", RequestedByRole: models.RoleJuniorEngineer, MaterialName: "River Sand", Quantity: dec(15), Unit: "trucks", Rate: decPtr(12000), Priority: models.PriorityMedium, Status: models.MaterialApproved, Reason: "Plastering work for Block B", Timestamp: yesterday, ApprovedBy: "Mahesh Iyer"},
		{ID: "mr4", SiteID: "s1", RequestedBy: "Rohit Kapoor", RequestedByRole: models.RoleJuniorEngineer, MaterialName: "Red Bricks", Quantity: dec(5000), Unit: "pieces", Rate: decPtr(8), Priority: models.PriorityMedium, Status: models.MaterialApproved, Reason: "Masonry work ongoing", Timestamp: twoDaysAgo, ApprovedBy: "Deepak Rao"},
		{ID: "mr5", SiteID: "s1", RequestedBy: "Priya Mehta", RequestedByRole: models.RoleJuniorEngineer, MaterialName: "White Cement", Quantity: dec(50), Unit: "bags", Rate: decPtr(450), Priority: models.PriorityLow, Status: models.MaterialRejected, Reason: "Not required this week", Timestamp: lastWeek, RejectionReason: "Budget constraints"},
		{ID: "mr6", SiteID: "s1", RequestedBy: "Arjun Desai", RequestedByRole: models.RoleJuniorEngineer, MaterialName: "Coarse Aggregate 20mm", Quantity: dec(30), Unit: "trucks", Rate: decPtr(15000), Priority: models.PriorityHigh, Status: models.MaterialPending, Reason: "Concrete mixing for foundation", Timestamp: today},
		{ID: "mr7", SiteID: "s1", RequestedBy: "Anjali Joshi", RequestedByRole: models.RoleJuniorEngineer, MaterialName: "Reinforcement Mesh", Quantity: dec(200), Unit: "sqm", Rate: decPtr(180), Priority: models.PriorityMedium, Status: models.MaterialPending, Reason: "Slab reinforcement", Timestamp: today},
	})

	due := func(t time.Time) *time.Time { return &t }
	s.Tasks.Replace([]models.Task{
		{ID: "t1", Title: "Foundation Inspection & Quality Check", Description: "Inspect Block A foundation before casting", Status: models.TaskPending, SiteID: "s1", AssignedTo: "u1", AssignedByName: "Mahesh Iyer", DueDate: due(today), Priority: "high"},
		{ID: "t2", Title: "Steel Framework Installation", Description: "Complete steel framework for Block B second floor", Status: models.TaskInProgress, SiteID: "s1", AssignedTo: "u2", AssignedByName: "Mahesh Iyer", DueDate: due(today), Priority: "high"},
		{ID: "t3", Title: "Material Stock Verification", Description: "Verify incoming cement and steel stock", Status: models.TaskCompleted, SiteID: "s1", AssignedTo: "u3", AssignedByName: "Deepak Rao", DueDate: due(yesterday), Priority: "medium"},
		{ID: "t4", Title: "Plumbing Installation - Block C", Description: "Complete plumbing for 12 units in Block C", Status: models.TaskInProgress, SiteID: "s1", AssignedTo: "u4", AssignedByName: "Mahesh Iyer", DueDate: due(today), Priority: "medium"},
		{ID: "t5", Title: "Electrical Wiring - Ground Floor", Description: "Install electrical wiring for ground floor units", Status: models.TaskPending, SiteID: "s1", AssignedTo: "u5", AssignedByName: "Deepak Rao", DueDate: due(today), Priority: "high"},
		{ID: "t6", Title: "Safety Equipment Check", Description: "Inspect and replace damaged safety equipment", Status: models.TaskCompleted, SiteID: "s1", AssignedTo: "u1", AssignedByName: "Mahesh Iyer", DueDate: due(yesterday), Priority: "high"},
	})

	s.Stock.Replace([]models.StockItem{
		{ID: "st1", SiteID: "s1", MaterialName: "OPC Cement Grade 53", Quantity: 1250, Unit: "bags", Location: "Warehouse A", LastUpdated: today, ReorderLevel: 500, Status: models.StockAdequate},
		{ID: "st2", SiteID: "s1", MaterialName: "TMT Steel Bars 12mm", Quantity: 3200, Unit: "kg", Location: "Steel Yard", LastUpdated: today, ReorderLevel: 1500, Status: models.StockAdequate},
		{ID: "st3", SiteID: "s1", MaterialName: "River Sand", Quantity: 28, Unit: "trucks", Location: "Stockpile Area", LastUpdated: yesterday, ReorderLevel: 20, Status: models.StockAdequate},
		{ID: "st4", SiteID: "s1", MaterialName: "White Cement", Quantity: 12, Unit: "bags", Location: "Store Room", LastUpdated: twoDaysAgo, ReorderLevel: 30, Status: models.StockLow},
		{ID: "st5", SiteID: "s1", MaterialName: "Red Bricks", Quantity: 8500, Unit: "pieces", Location: "Brick Stack", LastUpdated: today, ReorderLevel: 5000, Status: models.StockAdequate},
		{ID: "st6", SiteID: "s1", MaterialName: "PVC Pipes 4 inch", Quantity: 45, Unit: "pieces", Location: "Plumbing Store", LastUpdated: yesterday, ReorderLevel: 30, Status: models.StockAdequate},
		{ID: "st7", SiteID: "s1", MaterialName: "Electrical Wires 2.5mm", Quantity: 8, Unit: "rolls", Location: "Electrical Store", LastUpdated: twoDaysAgo, ReorderLevel: 15, Status: models.StockLow},
	})

	s.Tools.Replace([]models.Tool{
		{ID: "tl1", Name: "Heavy Duty Hammer", Description: "5kg claw hammer for demolition", SiteID: "s1", Quantity: 15},
		{ID: "tl2", Name: "Power Drill Set", Description: "Cordless drill with multiple bits", SiteID: "s1", Quantity: 8},
		{ID: "tl3", Name: "Angle Grinder", Description: "4.5 inch cutting and grinding", SiteID: "s1", Quantity: 6},
		{ID: "tl4", Name: "Welding Machine", Description: "Arc welding 200A capacity", SiteID: "s1", Quantity: 3},
		{ID: "tl5", Name: "Measuring Tape", Description: "30m steel measuring tape", SiteID: "s1", Quantity: 20},
		{ID: "tl6", Name: "Spirit Level", Description: "1.5m aluminum spirit level", SiteID: "s1", Quantity: 12},
	})

	issued := today
	returned := today
	s.ToolRequests.Replace([]models.ToolRequest{
		{ID: "tr1", ToolID: "tl1", ToolName: "Heavy Duty Hammer", SiteID: "s1", UserID: "u1", Status: models.ToolIssued, RequestedDuration: "2h", RequestedAt: today, IssuedAt: &issued},
		{ID: "tr2", ToolID: "tl2", ToolName: "Power Drill Set", SiteID: "s1", UserID: "u2", Status: models.ToolPending, RequestedDuration: "4h", RequestedAt: today},
		{ID: "tr3", ToolID: "tl3", ToolName: "Angle Grinder", SiteID: "s1", UserID: "u3", Status: models.ToolReturned, RequestedDuration: "1h", RequestedAt: yesterday, IssuedAt: &issued, ReturnedAt: &returned},
	})

	otpSent := today
	verified := yesterday
	s.Permits.Replace([]models.PermitRequest{
		{ID: "pt1", TaskName: "Electrical Trenching - High Voltage", WorkerID: "u1", WorkerName: "Ramesh Kumar", SiteID: "s1", Status: models.PermitOTPSent, RequestedAt: today, OTP: "8421", OTPSentAt: &otpSent},
		{ID: "pt2", TaskName: "Welding Work - Roof Structure", WorkerID: "u2", WorkerName: "Suresh Patel", SiteID: "s1", Status: models.PermitRequested, RequestedAt: today},
		{ID: "pt3", TaskName: "Crane Operation - Heavy Lifting", WorkerID: "u3", WorkerName: "Amit Sharma", SiteID: "s1", Status: models.PermitVerified, RequestedAt: yesterday, OTP: "5678", VerifiedAt: &verified},
	})

	s.PettyCash.Replace([]models.PettyCashEntry{
		{ID: "pc1", Amount: dec(3500), Purpose: "Site refreshments & snacks for 25 workers", Lat: 19.076, Lon: 72.8777, Address: "Andheri West, Mumbai", UserID: "u1", Timestamp: today, Status: models.PettyCashPending},
		{ID: "pc2", Amount: dec(2200), Purpose: "Minor tool repairs - drill bits replacement", Lat: 19.078, Lon: 72.879, Address: "Site Store, Andheri West", UserID: "u1", Timestamp: yesterday, Status: models.PettyCashApproved},
		{ID: "pc3", Amount: dec(1800), Purpose: "Safety equipment - gloves and helmets", Lat: 19.075, Lon: 72.876, Address: "Safety Store, Andheri", UserID: "u2", Timestamp: twoDaysAgo, Status: models.PettyCashApproved},
		{ID: "pc4", Amount: dec(4500), Purpose: "Emergency plumbing supplies", Lat: 19.077, Lon: 72.878, Address: "Hardware Store, Andheri West", UserID: "u3", Timestamp: today, Status: models.PettyCashPending},
	})

	s.GSTBills.Replace([]models.GSTBill{
		{ID: "g1", BillNumber: "INV-2024-001", VendorName: "ABC Cement Industries Ltd", VendorGST: "27AABCU9603R1ZM", Items: []models.GSTLineItem{{Name: "OPC Cement Grade 53", Quantity: dec(500), Rate: dec(420), GSTPct: dec(18)}}, TotalAmount: dec(210000), GSTAmount: dec(37800), GrandTotal: dec(247800), Date: today, Status: models.GSTSent, ProjectName: "Mumbai Residential Complex"},
		{ID: "g2", BillNumber: "INV-2024-002", VendorName: "Steel Corporation of India", VendorGST: "29AABCS1234F1Z5", Items: []models.GSTLineItem{{Name: "TMT Bars 12mm", Quantity: dec(2000), Rate: dec(68), GSTPct: dec(18)}}, TotalAmount: dec(136000), GSTAmount: dec(24480), GrandTotal: dec(160480), Date: yesterday, Status: models.GSTPaid, ProjectName: "Mumbai Residential Complex"},
		{ID: "g3", BillNumber: "INV-2024-003", VendorName: "Sand Suppliers Pvt Ltd", VendorGST: "19AABCS5678G2H6", Items: []models.GSTLineItem{{Name: "River Sand", Quantity: dec(20), Rate: dec(8500), GSTPct: dec(5)}}, TotalAmount: dec(170000), GSTAmount: dec(8500), GrandTotal: dec(178500), Date: twoDaysAgo, Status: models.GSTPaid, ProjectName: "Mumbai Residential Complex"},
		{ID: "g4", BillNumber: "INV-2024-004", VendorName: "Brick Manufacturers Association", VendorGST: "24AABCS9012I3J7", Items: []models.GSTLineItem{{Name: "Red Bricks", Quantity: dec(10000), Rate: dec(8), GSTPct: dec(12)}}, TotalAmount: dec(80000), GSTAmount: dec(9600), GrandTotal: dec(89600), Date: lastWeek, Status: models.GSTDraft, ProjectName: "Mumbai Residential Complex"},
	})

	s.Consumption.Replace([]models.ConsumptionSnapshot{
		{ID: "cv1", SiteID: "s1", MaterialName: "OPC Cement", TheoreticalQty: 500, ActualQty: 495, Unit: "bags", UpdatedAt: today},
		{ID: "cv2", SiteID: "s1", MaterialName: "TMT Steel Bars", TheoreticalQty: 2000, ActualQty: 2150, Unit: "kg", UpdatedAt: today},
		{ID: "cv3", SiteID: "s1", MaterialName: "River Sand", TheoreticalQty: 15, ActualQty: 22, Unit: "trucks", UpdatedAt: yesterday},
		{ID: "cv4", SiteID: "s1", MaterialName: "Red Bricks", TheoreticalQty: 8000, ActualQty: 7850, Unit: "pieces", UpdatedAt: today},
	})

	s.WorkLogs.Replace([]models.WorkLog{
		{ID: "wl1", SiteID: "s1", UserID: "u1", WorkDone: "Completed foundation casting for Block A - 120 sqm", Lat: 19.076, Lon: 72.8777, Address: "Block A, Andheri West, Mumbai", Timestamp: today},
		{ID: "wl2", SiteID: "s1", UserID: "u2", WorkDone: "Steel reinforcement work - 15 columns completed", Lat: 19.077, Lon: 72.878, Address: "Block B, Andheri West", Timestamp: yesterday},
		{ID: "wl3", SiteID: "s1", UserID: "u3", WorkDone: "Plumbing installation - 8 units finished", Lat: 19.075, Lon: 72.876, Address: "Block C, Andheri West", Timestamp: twoDaysAgo},
		{ID: "wl4", SiteID: "s1", UserID: "u1", WorkDone: "Electrical wiring - Ground floor completed", Lat: 19.076, Lon: 72.8777, Address: "Block A, Andheri West", Timestamp: lastWeek},
	})

	s.WorkPhotos.Replace([]models.WorkPhoto{
		{ID: "wp1", SiteID: "s1", UserID: "u1", Timestamp: today},
		{ID: "wp2", SiteID: "s1", UserID: "u2", Timestamp: yesterday},
		{ID: "wp3", SiteID: "s1", UserID: "u3", Timestamp: twoDaysAgo},
	})

	s.Contractors.Replace([]models.Contractor{
		{ID: "c1", Name: "Sharma Builders & Associates", Rating: 8.7, DeadlinesMet: 18, TotalProjects: 22, DefectCount: 3, PaymentAdvice: models.PaymentRelease, LastUpdated: today},
		{ID: "c2", Name: "Patel Construction Co", Rating: 6.4, DeadlinesMet: 8, TotalProjects: 12, DefectCount: 7, PaymentAdvice: models.PaymentHold, LastUpdated: yesterday},
		{ID: "c3", Name: "Kumar Contractors Pvt Ltd", Rating: 9.2, DeadlinesMet: 25, TotalProjects: 25, DefectCount: 1, PaymentAdvice: models.PaymentRelease, LastUpdated: today},
		{ID: "c4", Name: "Reddy Infrastructure", Rating: 7.8, DeadlinesMet: 14, TotalProjects: 18, DefectCount: 4, PaymentAdvice: models.PaymentPartial, LastUpdated: twoDaysAgo},
		{ID: "c5", Name: "Iyer Engineering Works", Rating: 5.9, DeadlinesMet: 4, TotalProjects: 9, DefectCount: 8, PaymentAdvice: models.PaymentHold, LastUpdated: lastWeek},
	})
}
