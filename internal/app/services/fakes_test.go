package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/db"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

// fakeTxRunner runs the transaction function directly with a nil tx. The
// fakes below ignore the tx argument, so this is enough to exercise the
// service-level transaction choreography.
type fakeTxRunner struct {
	beginErr error
	calls    int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.calls++
	if f.beginErr != nil {
		return f.beginErr
	}
	return fn(ctx, nil)
}

type fakeAdmissionStore struct {
	admissions map[int64]*models.Admission

	updatedStatus map[int64]models.Status
	deletedTx     []int64
	deleted       []int64
	deleteTxErr   error
}

func newFakeAdmissionStore(admissions ...*models.Admission) *fakeAdmissionStore {
	s := &fakeAdmissionStore{
		admissions:    make(map[int64]*models.Admission),
		updatedStatus: make(map[int64]models.Status),
	}
	for _, a := range admissions {
		s.admissions[a.ID] = a
	}
	return s
}

func (s *fakeAdmissionStore) Create(ctx context.Context, admission *models.Admission) (int64, error) {
	id := int64(len(s.admissions) + 1)
	admission.ID = id
	s.admissions[id] = admission
	return id, nil
}

func (s *fakeAdmissionStore) GetByID(ctx context.Context, id int64) (*models.Admission, error) {
	a, ok := s.admissions[id]
	if !ok {
		return nil, apperrors.ErrAdmissionNotFound
	}
	return a, nil
}

func (s *fakeAdmissionStore) List(ctx context.Context) ([]*models.Admission, error) {
	out := make([]*models.Admission, 0, len(s.admissions))
	for _, a := range s.admissions {
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeAdmissionStore) Update(ctx context.Context, admission *models.Admission) error {
	if _, ok := s.admissions[admission.ID]; !ok {
		return apperrors.ErrAdmissionNotFound
	}
	s.admissions[admission.ID] = admission
	return nil
}

func (s *fakeAdmissionStore) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	if _, ok := s.admissions[id]; !ok {
		return apperrors.ErrAdmissionNotFound
	}
	s.updatedStatus[id] = status
	return nil
}

func (s *fakeAdmissionStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.admissions[id]; !ok {
		return apperrors.ErrAdmissionNotFound
	}
	delete(s.admissions, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeAdmissionStore) DeleteTx(ctx context.Context, tx pgx.Tx, id int64) error {
	if s.deleteTxErr != nil {
		return s.deleteTxErr
	}
	if _, ok := s.admissions[id]; !ok {
		return apperrors.ErrAdmissionNotFound
	}
	delete(s.admissions, id)
	s.deletedTx = append(s.deletedTx, id)
	return nil
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextSeq  int64
	nextID   int64

	createTxErr error
	seqErr      error

	cleared  []string
	assigned []assignment
}

type assignment struct {
	ids         []int64
	sectionName string
	subjectsRaw string
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	s := &fakeStudentStore{students: make(map[int64]*models.Student)}
	for _, st := range students {
		s.students[st.ID] = st
	}
	return s
}

func (s *fakeStudentStore) NextSequenceTx(ctx context.Context, tx pgx.Tx, year int) (int64, error) {
	if s.seqErr != nil {
		return 0, s.seqErr
	}
	s.nextSeq++
	return s.nextSeq, nil
}

func (s *fakeStudentStore) CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) (int64, error) {
	if s.createTxErr != nil {
		return 0, s.createTxErr
	}
	s.nextID++
	student.ID = s.nextID
	s.students[s.nextID] = student
	return s.nextID, nil
}

func (s *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return st, nil
}

func (s *fakeStudentStore) List(ctx context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, st)
	}
	return out, nil
}

func (s *fakeStudentStore) SearchByName(ctx context.Context, query string) ([]*models.Student, error) {
	return s.List(ctx)
}

func (s *fakeStudentStore) ClearSectionTx(ctx context.Context, tx pgx.Tx, sectionName string) error {
	s.cleared = append(s.cleared, sectionName)
	return nil
}

func (s *fakeStudentStore) AssignSectionTx(ctx context.Context, tx pgx.Tx, studentIDs []int64, sectionName, subjectsRaw string) error {
	s.assigned = append(s.assigned, assignment{ids: studentIDs, sectionName: sectionName, subjectsRaw: subjectsRaw})
	return nil
}

type fakeArchiveStore struct {
	archived map[int64]*models.ArchivedApplication
	nextID   int64

	createTxErr error
}

func newFakeArchiveStore() *fakeArchiveStore {
	return &fakeArchiveStore{archived: make(map[int64]*models.ArchivedApplication)}
}

func (s *fakeArchiveStore) CreateTx(ctx context.Context, tx pgx.Tx, archived *models.ArchivedApplication) (int64, error) {
	if s.createTxErr != nil {
		return 0, s.createTxErr
	}
	s.nextID++
	archived.ID = s.nextID
	s.archived[s.nextID] = archived
	return s.nextID, nil
}

func (s *fakeArchiveStore) GetByID(ctx context.Context, id int64) (*models.ArchivedApplication, error) {
	a, ok := s.archived[id]
	if !ok {
		return nil, apperrors.ErrArchiveRecordNotFound
	}
	return a, nil
}

func (s *fakeArchiveStore) List(ctx context.Context) ([]*models.ArchivedApplication, error) {
	out := make([]*models.ArchivedApplication, 0, len(s.archived))
	for _, a := range s.archived {
		out = append(out, a)
	}
	return out, nil
}

type fakeSectionStore struct {
	sections map[int64]*models.Section
	nextID   int64

	successions map[string]*models.Succession
	clearedKeys []string
}

func newFakeSectionStore(sections ...*models.Section) *fakeSectionStore {
	s := &fakeSectionStore{
		sections:    make(map[int64]*models.Section),
		successions: make(map[string]*models.Succession),
	}
	for _, sec := range sections {
		s.sections[sec.ID] = sec
	}
	return s
}

func sectionKey(gradeLevel int, name string) string {
	return fmt.Sprintf("%d/%s", gradeLevel, name)
}

func (s *fakeSectionStore) Create(ctx context.Context, section *models.Section) (int64, error) {
	s.nextID++
	section.ID = s.nextID
	s.sections[s.nextID] = section
	return s.nextID, nil
}

func (s *fakeSectionStore) GetByID(ctx context.Context, id int64) (*models.Section, error) {
	sec, ok := s.sections[id]
	if !ok {
		return nil, apperrors.ErrSectionNotFound
	}
	return sec, nil
}

func (s *fakeSectionStore) GetByGradeAndName(ctx context.Context, gradeLevel int, name string) (*models.Section, error) {
	for _, sec := range s.sections {
		if sec.GradeLevel == gradeLevel && sec.Name == name {
			return sec, nil
		}
	}
	return nil, apperrors.ErrSectionNotFound
}

func (s *fakeSectionStore) List(ctx context.Context) ([]*models.Section, error) {
	out := make([]*models.Section, 0, len(s.sections))
	for _, sec := range s.sections {
		out = append(out, sec)
	}
	return out, nil
}

func (s *fakeSectionStore) UpdateTx(ctx context.Context, tx pgx.Tx, section *models.Section) error {
	if _, ok := s.sections[section.ID]; !ok {
		return apperrors.ErrSectionNotFound
	}
	s.sections[section.ID] = section
	return nil
}

func (s *fakeSectionStore) SetSuccession(ctx context.Context, gradeLevel int, name string, succession *models.Succession) error {
	sec, err := s.GetByGradeAndName(ctx, gradeLevel, name)
	if err != nil {
		return err
	}
	sec.NextGradeLevel = &succession.NextGradeLevel
	sec.NextSectionName = &succession.NextSectionName
	s.successions[sectionKey(gradeLevel, name)] = succession
	return nil
}

func (s *fakeSectionStore) ClearSuccession(ctx context.Context, gradeLevel int, name string) error {
	sec, err := s.GetByGradeAndName(ctx, gradeLevel, name)
	if err != nil {
		return err
	}
	sec.NextGradeLevel = nil
	sec.NextSectionName = nil
	delete(s.successions, sectionKey(gradeLevel, name))
	s.clearedKeys = append(s.clearedKeys, sectionKey(gradeLevel, name))
	return nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*models.User)}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *fakeUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}
