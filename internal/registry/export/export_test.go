package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	registrymetrics "wardregistry/internal/registry/metrics"
	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/query"
	id "wardregistry/pkg/domain"
	dErrors "wardregistry/pkg/domain-errors"
	"wardregistry/pkg/requestcontext"
)

type fakeSource struct {
	dwellings []*models.Dwelling
	records   []*models.BeneficiaryRecord
}

func (f fakeSource) ListDwellings(context.Context, query.Criteria) ([]*models.Dwelling, error) {
	return f.dwellings, nil
}

func (f fakeSource) ListRecords(_ context.Context, category models.Category, _ query.Criteria) ([]*models.BeneficiaryRecord, error) {
	var out []*models.BeneficiaryRecord
	for _, r := range f.records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeLinks struct{}

func (fakeLinks) ResolveAddress(id.DwellingID) string { return "12 Lê Lợi, Phường 1" }

func (fakeLinks) ResolvePayee(_ id.DwellingID, p models.Payee) string {
	if p.IsInPerson() {
		return models.PayeeInPerson
	}
	return p.DisplayName
}

var created = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func fixtures(t *testing.T) fakeSource {
	t.Helper()
	d, err := models.NewDwelling(id.NewDwellingID(), "2026-0001", models.DwellingDraft{
		HouseNumber: "12", StreetName: "Lê Lợi", OwnerName: "Nguyen Van A", Note: "góc đường, cạnh chợ",
	}, "clerk", created)
	require.NoError(t, err)

	merit, err := models.NewBeneficiaryRecord(id.NewRecordID(), models.CategoryMerit, models.BeneficiaryDraft{
		LinkedHouseID: d.ID, SubjectName: "Nguyen Van A", SubsidyAmount: 500000,
		Classification: models.Classification{Name: "Thương binh"},
	}, "clerk", created)
	require.NoError(t, err)

	mil, err := models.NewBeneficiaryRecord(id.NewRecordID(), models.CategoryMilitary, models.BeneficiaryDraft{
		LinkedHouseID: d.ID, SubjectName: "Tran Van B", SubsidyAmount: 999,
		Classification: models.Classification{Name: "Trung sĩ"},
	}, "clerk", created)
	require.NoError(t, err)

	return fakeSource{dwellings: []*models.Dwelling{d}, records: []*models.BeneficiaryRecord{merit, mil}}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "social_protection_2026-03-14.csv", FileName(models.CategorySocialProtection, FormatCSV, created))
	assert.Equal(t, "dwelling_2026-03-14.xlsx", FileName(models.CategoryDwelling, FormatXLSX, created))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestWriteCSV(t *testing.T) {
	src := fixtures(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, RecordTable(models.CategoryMerit, src.records[:1], fakeLinks{})))

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, utf8BOM))
	lines := strings.Split(strings.TrimSuffix(string(out[len(utf8BOM):]), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Họ tên,CCCD,Quan hệ với chủ hộ,Địa chỉ,Diện người có công,Trợ cấp (VNĐ),Người nhận thay"))
	assert.Contains(t, lines[1], `"12 Lê Lợi, Phường 1"`)
	assert.Contains(t, lines[1], ",500000,in person,")
}

func TestDwellingTableQuotesNotes(t *testing.T) {
	src := fixtures(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, DwellingTable(src.dwellings)))
	assert.Contains(t, buf.String(), `"góc đường, cạnh chợ"`)
	assert.Contains(t, buf.String(), "2026-0001,12,Lê Lợi")
	assert.Contains(t, buf.String(), "14/03/2026")
}

func TestMilitaryHasNoMoneyColumns(t *testing.T) {
	src := fixtures(t)
	table := RecordTable(models.CategoryMilitary, src.records[1:], fakeLinks{})
	assert.NotContains(t, table.Header, "Trợ cấp (VNĐ)")
	assert.Contains(t, table.Header, "Cấp bậc")
	for _, v := range table.Rows[0] {
		assert.NotEqual(t, "999", v)
	}
}

func TestColumns(t *testing.T) {
	assert.Equal(t, "Mã hồ sơ", Columns(models.CategoryDwelling)[0])
	merit := Columns(models.CategoryMerit)
	assert.Equal(t, "Họ tên", merit[0])
	assert.Contains(t, merit, "Diện người có công")
	assert.Contains(t, merit, "Người nhận thay")
	assert.Len(t, Columns(models.CategoryMilitary), len(merit)-4)
}

func TestWriteXLSX(t *testing.T) {
	src := fixtures(t)
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, DwellingTable(src.dwellings)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := models.CategoryDwelling.Label()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Mã hồ sơ", rows[0][0])
	assert.Equal(t, "2026-0001", rows[1][0])
	assert.Equal(t, "Nguyen Van A", rows[1][4])
}

func TestExporter(t *testing.T) {
	src := fixtures(t)
	m := registrymetrics.New(prometheus.NewRegistry())
	x := New(src, fakeLinks{}, WithMetrics(m), WithLocation(time.FixedZone("ICT", 7*3600)))
	// 20:00 UTC is already the next day in ICT
	ctx := requestcontext.WithTime(context.Background(), time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC))

	f, err := x.Export(ctx, models.CategoryMerit, FormatCSV, query.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, "merit_2026-03-15.csv", f.Name)
	assert.Equal(t, 1, f.Rows)
	assert.Equal(t, "text/csv; charset=utf-8", f.ContentType)
	assert.Equal(t, float64(1), promtestutil.ToFloat64(m.ExportRows.WithLabelValues("merit", "csv")))

	_, err = x.Upload(ctx, f)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

type fakePutObject struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutObject) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Upload(t *testing.T) {
	src := fixtures(t)
	client := &fakePutObject{}
	x := New(src, fakeLinks{}, WithUploader(NewS3UploaderWithClient(client, "ward-exports", "phuong-1")))
	ctx := requestcontext.WithTime(context.Background(), created)

	f, err := x.Export(ctx, models.CategoryDwelling, FormatXLSX, query.Criteria{})
	require.NoError(t, err)

	key, err := x.Upload(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, "phuong-1/dwelling_2026-03-14.xlsx", key)
	assert.Equal(t, "ward-exports", *client.input.Bucket)
	assert.Equal(t, FormatXLSX.ContentType(), *client.input.ContentType)
	assert.Equal(t, f.Data, client.body)

	client.err = errors.New("access denied")
	_, err = x.Upload(ctx, f)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
