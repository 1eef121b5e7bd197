package report

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"wardregistry/internal/registry/linkage"
	registrymetrics "wardregistry/internal/registry/metrics"
	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/query"
	"wardregistry/internal/registry/service"
	beneficiarystore "wardregistry/internal/registry/store/beneficiary"
	catalogstore "wardregistry/internal/registry/store/catalog"
	dwellingstore "wardregistry/internal/registry/store/dwelling"
	"wardregistry/internal/registry/store/sequence"
	id "wardregistry/pkg/domain"
	"wardregistry/pkg/requestcontext"
)

type ReportSuite struct {
	suite.Suite
	service *service.Service
	engine  *Engine
	metrics *registrymetrics.Metrics
	day1    time.Time
	day2    time.Time
	house   *models.Dwelling
}

func TestReportSuite(t *testing.T) {
	suite.Run(t, new(ReportSuite))
}

func (s *ReportSuite) SetupTest() {
	dwellings := dwellingstore.NewInMemory()
	var stores []service.BeneficiaryStore
	var listers []RecordLister
	for _, c := range models.BeneficiaryCategories() {
		st := beneficiarystore.NewInMemory(c)
		stores = append(stores, st)
		listers = append(listers, st)
	}
	links := linkage.New(dwellings)
	s.service = service.New(service.Stores{
		Dwellings: dwellings,
		Records:   stores,
		Catalogs:  catalogstore.NewInMemory(),
		Sequencer: sequence.NewMemory(),
	}, links)
	s.metrics = registrymetrics.New(prometheus.NewRegistry())
	s.engine = New(dwellings, listers, links, WithMetrics(s.metrics))

	s.day1 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.day2 = time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
	s.seed()
}

func (s *ReportSuite) at(t time.Time) context.Context {
	return requestcontext.WithTime(requestcontext.WithActor(context.Background(), "clerk"), t)
}

func (s *ReportSuite) seed() {
	ctx := s.at(s.day1)
	var err error
	s.house, err = s.service.CreateDwelling(ctx, models.DwellingDraft{
		HouseNumber: "12", StreetName: "Lê Lợi", OwnerName: "Nguyen Van A", Disputed: true,
		Boundary: models.Polygon{
			{Lat: 10.000, Lng: 106.000}, {Lat: 10.001, Lng: 106.000},
			{Lat: 10.001, Lng: 106.001}, {Lat: 10.000, Lng: 106.001},
		},
	})
	s.Require().NoError(err)
	other, err := s.service.CreateDwelling(s.at(s.day2), models.DwellingDraft{
		HouseNumber: "3", StreetName: "Hai Bà Trưng", OwnerName: "Tran Thi B",
	})
	s.Require().NoError(err)

	add := func(t time.Time, c models.Category, house id.DwellingID, name, class string, amount int64) *models.BeneficiaryRecord {
		r, err := s.service.CreateRecord(s.at(t), c, service.RecordInput{
			LinkedHouseID: house, SubjectName: name, ClassificationName: class, SubsidyAmount: amount,
		})
		s.Require().NoError(err)
		return r
	}

	add(s.day1, models.CategoryMilitary, s.house.ID, "Soldier 1", "Trung sĩ", 999999)
	add(s.day1, models.CategoryMilitary, s.house.ID, "Soldier 2", "Trung sĩ", 999999)
	add(s.day2, models.CategoryMilitary, other.ID, "Soldier 3", "Thượng úy", 0)
	add(s.day1, models.CategoryMerit, s.house.ID, "Merit 1", "Thương binh", 500000)
	add(s.day2, models.CategoryMerit, other.ID, "Merit 2", "Liệt sĩ", 700000)
	add(s.day1, models.CategoryMedal, s.house.ID, "Medal 1", "HCKC", 100000)
	gone := add(s.day1, models.CategoryPolicy, other.ID, "Policy 1", "Hộ nghèo", 300000)
	add(s.day2, models.CategorySocialProtection, s.house.ID, "Social 1", "Người cao tuổi", 50000)

	_, err = s.service.SoftDeleteRecord(s.at(s.day2), models.CategoryPolicy, gone.ID)
	s.Require().NoError(err)
}

func (s *ReportSuite) TestSummaryAll() {
	sum, err := s.engine.Summarize(context.Background(), query.Criteria{Status: models.StatusFilterAll})
	s.Require().NoError(err)
	s.Require().Len(sum.Categories, 6)

	dw, _ := sum.Category(models.CategoryDwelling)
	s.Equal(2, dw.Count)
	s.Equal(float64(1), dw.Highlight.Value)
	s.InDelta(12180, dw.AreaSquareMeters, 300)

	mil, _ := sum.Category(models.CategoryMilitary)
	s.Equal(3, mil.Count)
	s.Equal(Highlight{Label: "Trung sĩ", Value: 2}, mil.Highlight)
	s.Zero(mil.SubsidySum)

	merit, _ := sum.Category(models.CategoryMerit)
	s.Equal(int64(1200000), merit.SubsidySum)

	// military amounts never count toward the budget
	s.Equal(int64(500000+700000+100000+300000+50000), sum.TotalBudget)
}

func (s *ReportSuite) TestSummaryActiveExcludesSoftDeleted() {
	sum, err := s.engine.Summarize(context.Background(), query.Criteria{Status: models.StatusFilterActive})
	s.Require().NoError(err)

	policy, _ := sum.Category(models.CategoryPolicy)
	s.Equal(0, policy.Count)
	s.Equal(int64(500000+700000+100000+50000), sum.TotalBudget)
}

func (s *ReportSuite) TestSummaryDateRange() {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	sum, err := s.engine.Summarize(context.Background(), query.Criteria{
		Status: models.StatusFilterAll, From: &day, To: &day,
	})
	s.Require().NoError(err)

	dw, _ := sum.Category(models.CategoryDwelling)
	s.Equal(1, dw.Count)
	policy, _ := sum.Category(models.CategoryPolicy)
	s.Equal(0, policy.Count, "soft delete on day 2 moved the activity timestamp")
	s.Equal(int64(500000+100000), sum.TotalBudget)
}

// The report and the list endpoints must agree for every combination of
// term, status and range.
func (s *ReportSuite) TestFilterComposability() {
	ctx := context.Background()
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	ranges := [][2]*time.Time{{nil, nil}, {&day1, &day1}, {&day2, nil}, {nil, &day1}, {&day1, &day2}}
	terms := []string{"", "lê lợi", "hai bà", "soldier", "trung sĩ", "zzz"}
	statuses := []models.StatusFilter{models.StatusFilterAll, models.StatusFilterActive, models.StatusFilterInactive}

	for _, term := range terms {
		for _, status := range statuses {
			for _, r := range ranges {
				c := query.Criteria{Term: term, Status: status, From: r[0], To: r[1]}
				sum, err := s.engine.Summarize(ctx, c)
				s.Require().NoError(err)

				dwellings, err := s.service.ListDwellings(ctx, c)
				s.Require().NoError(err)
				row, _ := sum.Category(models.CategoryDwelling)
				s.Equal(len(dwellings), row.Count, "dwelling %+v", c)

				var budget int64
				for _, category := range models.BeneficiaryCategories() {
					recs, err := s.service.ListRecords(ctx, category, c)
					s.Require().NoError(err)
					row, _ := sum.Category(category)
					s.Equal(len(recs), row.Count, "%s %+v", category, c)
					for _, rec := range recs {
						budget += rec.BudgetAmount()
					}
				}
				s.Equal(budget, sum.TotalBudget, "%+v", c)
			}
		}
	}
}

func (s *ReportSuite) TestRecomputedOnEveryCall() {
	ctx := context.Background()
	c := query.Criteria{Status: models.StatusFilterAll}
	before, err := s.engine.Summarize(ctx, c)
	s.Require().NoError(err)

	_, err = s.service.CreateRecord(s.at(s.day2), models.CategoryMedal, service.RecordInput{
		LinkedHouseID: s.house.ID, SubjectName: "Medal 2", ClassificationName: "HCKC", SubsidyAmount: 1,
	})
	s.Require().NoError(err)

	after, err := s.engine.Summarize(ctx, c)
	s.Require().NoError(err)
	s.Equal(before.TotalBudget+1, after.TotalBudget)
}

func (s *ReportSuite) TestMilitaryHighlightCode() {
	ctx := context.Background()
	dwellings := dwellingstore.NewInMemory()
	mil := beneficiarystore.NewInMemory(models.CategoryMilitary)
	e := New(dwellings, []RecordLister{mil}, linkage.New(dwellings), WithMilitaryHighlight("DT"))

	r, err := models.NewBeneficiaryRecord(id.NewRecordID(), models.CategoryMilitary, models.BeneficiaryDraft{
		LinkedHouseID: id.NewDwellingID(), SubjectName: "A",
		Classification: models.Classification{Code: "DT", Name: "Đại tá"},
	}, "clerk", s.day1)
	s.Require().NoError(err)
	s.Require().NoError(mil.Insert(ctx, r))

	sum, err := e.Summarize(ctx, query.Criteria{Status: models.StatusFilterAll})
	s.Require().NoError(err)
	row, _ := sum.Category(models.CategoryMilitary)
	s.Equal(Highlight{Label: "Đại tá", Value: 1}, row.Highlight)
}

func (s *ReportSuite) TestDrillDown() {
	ctx := context.Background()

	s.Run("opens on active when the report shows all", func() {
		s.Equal(models.StatusFilterActive, DrillDownStatus(models.StatusFilterAll))
		s.Equal(models.StatusFilterInactive, DrillDownStatus(models.StatusFilterInactive))

		page, err := s.engine.RecordDetails(ctx, models.CategoryPolicy, query.Criteria{Status: models.StatusFilterAll}, DetailQuery{})
		s.Require().NoError(err)
		s.Equal(0, page.Total)

		page, err = s.engine.RecordDetails(ctx, models.CategoryPolicy, query.Criteria{Status: models.StatusFilterInactive}, DetailQuery{})
		s.Require().NoError(err)
		s.Equal(1, page.Total)
	})

	s.Run("own term and status", func() {
		page, err := s.engine.RecordDetails(ctx, models.CategoryMilitary, query.Criteria{Status: models.StatusFilterAll},
			DetailQuery{Term: "soldier 3", Status: models.StatusFilterAll})
		s.Require().NoError(err)
		s.Require().Len(page.Items, 1)
		s.Equal("Soldier 3", page.Items[0].SubjectName)
	})

	s.Run("keeps the report date range", func() {
		day := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		page, err := s.engine.DwellingDetails(ctx, query.Criteria{Status: models.StatusFilterAll, From: &day}, DetailQuery{})
		s.Require().NoError(err)
		s.Require().Len(page.Items, 1)
		s.Equal("Tran Thi B", page.Items[0].OwnerName)
	})

	s.Run("pages by five", func() {
		for i := 0; i < 7; i++ {
			_, err := s.service.CreateRecord(s.at(s.day1), models.CategoryMedal, service.RecordInput{
				LinkedHouseID: s.house.ID, SubjectName: "Bulk", ClassificationName: "HCKC",
			})
			s.Require().NoError(err)
		}
		page, err := s.engine.RecordDetails(ctx, models.CategoryMedal, query.Criteria{Status: models.StatusFilterAll}, DetailQuery{Page: 2})
		s.Require().NoError(err)
		s.Equal(5, page.PageSize)
		s.Equal(8, page.Total)
		s.Equal(2, page.TotalPages)
		s.Len(page.Items, 3)
	})

	s.Run("dwelling is not a record category", func() {
		_, err := s.engine.RecordDetails(ctx, models.CategoryDwelling, query.Criteria{}, DetailQuery{})
		s.Error(err)
	})
}
