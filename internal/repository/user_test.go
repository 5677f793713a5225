//go:build integration
// +build integration

package repository

import (
	"testing"

	"subtitles-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository and VideoRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	videos        *VideoRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.videos = NewVideoRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateUsername tests the unique username constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateUsername() {
	suite.NoError(suite.repo.Create(suite.factories.User.WithUsername("alice")))

	err := suite.repo.Create(suite.factories.User.WithUsername("alice"))
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByID tests retrieving a user by ID
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByID(user.ID)

	suite.NoError(err)
	suite.Equal(user.Username, found.Username)
}

// TestGetByIDNotFound tests retrieving a non-existent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestGetByUsername tests retrieving a user by username
func (suite *UserRepositoryTestSuite) TestGetByUsername() {
	user := suite.factories.User.WithUsername("bob")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByUsername("bob")

	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestVideoCreateAndGet tests the video repository round trip
func (suite *UserRepositoryTestSuite) TestVideoCreateAndGet() {
	video := suite.factories.Video.WithPrimaryLanguage("fr")
	suite.NoError(suite.videos.Create(video))

	found, err := suite.videos.GetByID(video.ID)

	suite.NoError(err)
	suite.Equal("fr", found.PrimaryAudioLanguageCode)
	suite.True(found.AllowVideoURLsEdit)

	_, err = suite.videos.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
