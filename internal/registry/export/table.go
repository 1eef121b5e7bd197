package export

import (
	"strconv"
	"time"

	"wardregistry/internal/registry/models"
	id "wardregistry/pkg/domain"
)

const dateLayout = "02/01/2006"

// Resolver renders dwelling references the same way list views do.
type Resolver interface {
	ResolveAddress(dwellingID id.DwellingID) string
	ResolvePayee(dwellingID id.DwellingID, p models.Payee) string
}

// Table is an export before encoding: a localized header and one row per record.
type Table struct {
	Category models.Category
	Header   []string
	Rows     [][]string
}

type column[T any] struct {
	header string
	value  func(T) string
}

func build[T any](category models.Category, cols []column[T], items []T) Table {
	t := Table{Category: category, Header: make([]string, len(cols))}
	for i, c := range cols {
		t.Header[i] = c.header
	}
	for _, it := range items {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.value(it)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

var dwellingColumns = []column[*models.Dwelling]{
	{"Mã hồ sơ", func(d *models.Dwelling) string { return d.CaseNumber }},
	{"Số nhà", func(d *models.Dwelling) string { return d.HouseNumber }},
	{"Tên đường", func(d *models.Dwelling) string { return d.StreetName }},
	{"Khu phố", func(d *models.Dwelling) string { return d.Neighborhood }},
	{"Chủ hộ", func(d *models.Dwelling) string { return d.OwnerName }},
	{"CCCD chủ hộ", func(d *models.Dwelling) string { return d.OwnerNationalID }},
	{"Tờ bản đồ", func(d *models.Dwelling) string { return d.CadastralSheet }},
	{"Thửa đất", func(d *models.Dwelling) string { return d.CadastralParcel }},
	{"Tranh chấp", func(d *models.Dwelling) string { return yesNo(d.Disputed) }},
	{"Vĩ độ", func(d *models.Dwelling) string { return coord(d.Location, true) }},
	{"Kinh độ", func(d *models.Dwelling) string { return coord(d.Location, false) }},
	{"Diện tích (m²)", func(d *models.Dwelling) string { return area(d.Boundary) }},
	{"Số nhân khẩu", func(d *models.Dwelling) string { return strconv.Itoa(len(d.Members)) }},
	{"Ghi chú", func(d *models.Dwelling) string { return d.Note }},
	{"Trạng thái", func(d *models.Dwelling) string { return statusLabel(d.Status) }},
	{"Ngày tạo", func(d *models.Dwelling) string { return d.CreatedAt.Format(dateLayout) }},
	{"Người tạo", func(d *models.Dwelling) string { return d.CreatedBy }},
	{"Ngày cập nhật", func(d *models.Dwelling) string { return optionalDate(d.UpdatedAt) }},
}

// DwellingTable lays out dwellings in the fixed dwelling column order.
func DwellingTable(list []*models.Dwelling) Table {
	return build(models.CategoryDwelling, dwellingColumns, list)
}

var classificationHeaders = map[models.Category]string{
	models.CategoryMilitary:         "Cấp bậc",
	models.CategoryMerit:            "Diện người có công",
	models.CategoryMedal:            "Loại khen thưởng",
	models.CategoryPolicy:           "Diện chính sách",
	models.CategorySocialProtection: "Diện bảo trợ",
}

func recordColumns(category models.Category, links Resolver) []column[*models.BeneficiaryRecord] {
	cols := []column[*models.BeneficiaryRecord]{
		{"Họ tên", func(r *models.BeneficiaryRecord) string { return r.SubjectName }},
		{"CCCD", func(r *models.BeneficiaryRecord) string { return r.SubjectNationalID }},
		{"Quan hệ với chủ hộ", func(r *models.BeneficiaryRecord) string { return r.Relationship }},
		{"Địa chỉ", func(r *models.BeneficiaryRecord) string { return links.ResolveAddress(r.LinkedHouseID) }},
		{classificationHeaders[category], func(r *models.BeneficiaryRecord) string { return r.Classification.Name }},
	}
	if category.Monetary() {
		cols = append(cols,
			column[*models.BeneficiaryRecord]{"Trợ cấp (VNĐ)", func(r *models.BeneficiaryRecord) string {
				return strconv.FormatInt(r.SubsidyAmount, 10)
			}},
			column[*models.BeneficiaryRecord]{"Người nhận thay", func(r *models.BeneficiaryRecord) string {
				return links.ResolvePayee(r.LinkedHouseID, r.Payee)
			}},
			column[*models.BeneficiaryRecord]{"Ngân hàng", func(r *models.BeneficiaryRecord) string { return r.BankName }},
			column[*models.BeneficiaryRecord]{"Số tài khoản", func(r *models.BeneficiaryRecord) string { return r.BankAccount }},
		)
	}
	return append(cols,
		column[*models.BeneficiaryRecord]{"Ghi chú", func(r *models.BeneficiaryRecord) string { return r.Note }},
		column[*models.BeneficiaryRecord]{"Trạng thái", func(r *models.BeneficiaryRecord) string { return statusLabel(r.Status) }},
		column[*models.BeneficiaryRecord]{"Ngày tạo", func(r *models.BeneficiaryRecord) string { return r.CreatedAt.Format(dateLayout) }},
		column[*models.BeneficiaryRecord]{"Người tạo", func(r *models.BeneficiaryRecord) string { return r.CreatedBy }},
		column[*models.BeneficiaryRecord]{"Ngày cập nhật", func(r *models.BeneficiaryRecord) string { return optionalDate(r.UpdatedAt) }},
	)
}

// RecordTable lays out one category's records. Military exports carry no
// money columns.
func RecordTable(category models.Category, list []*models.BeneficiaryRecord, links Resolver) Table {
	return build(category, recordColumns(category, links), list)
}

// Columns is the header row for category, in export order.
func Columns(category models.Category) []string {
	if category == models.CategoryDwelling {
		return DwellingTable(nil).Header
	}
	return RecordTable(category, nil, nil).Header
}

func yesNo(b bool) string {
	if b {
		return "Có"
	}
	return "Không"
}

func statusLabel(s models.Status) string {
	if s == models.StatusActive {
		return "Đang hoạt động"
	}
	return "Ngừng hoạt động"
}

func coord(p *models.GeoPoint, lat bool) string {
	if p == nil {
		return ""
	}
	if lat {
		return strconv.FormatFloat(p.Lat, 'f', 6, 64)
	}
	return strconv.FormatFloat(p.Lng, 'f', 6, 64)
}

func area(p models.Polygon) string {
	if !p.Valid() {
		return ""
	}
	return strconv.FormatFloat(p.AreaSquareMeters(), 'f', 1, 64)
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
