package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/Sain-orshikh/MAIS-burtgel/pkg/utils"
)

// mock data tables for offline demos and load tests

var mockSchoolNames = []string{
	"International School of Ulaanbaatar",
	"American School of Ulaanbaatar",
	"Elite School of Mongolia",
	"New Horizon International School",
	"School of Mathematics and Natural Sciences",
	"Cambridge International School",
	"British School of Ulaanbaatar",
	"Mongolian National University",
	"Eastern International School",
	"Peace Bridge International Academy",
}

var mockFirstNames = []string{
	"Bat", "Oyun", "Bolor", "Enkh", "Munkh",
	"Tsetseg", "Altai", "Dulam", "Naran", "Solongo",
}

var mockLastNames = []string{
	"Dorj", "Batbold", "Erdene", "Tsogt", "Ganbaatar",
	"Bayar", "Suren", "Jargal", "Ochir", "Munkhbat",
}

var mockEmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "example.com",
}

var mockEssayFragments = []string{
	"The importance of education in today's rapidly changing world cannot be overstated.",
	"My journey through academic life has been filled with challenges and opportunities.",
	"I believe that a strong educational foundation is essential for personal growth.",
	"Throughout my academic journey, I have always been passionate about learning new concepts.",
	"My interest in this field began when I was introduced to the subject in high school.",
	"I am committed to making a positive impact on society through my education and skills.",
	"The challenges we face today require innovative solutions and fresh perspectives.",
	"My experiences have taught me the value of perseverance and determination.",
	"I aspire to contribute to the advancement of knowledge in my chosen field.",
	"Education has the power to transform lives and create positive change in communities.",
}

// NewMockApplicants generates count fake applicants for demos and list-view
// work without a live backend. Statuses follow a 50/30/20
// pending/approved/rejected split.
func NewMockApplicants(count int) []Applicant {
	applicants := make([]Applicant, 0, count)

	for i := 1; i <= count; i++ {
		firstName := mockFirstNames[utils.RandomIntn(len(mockFirstNames))]
		lastName := mockLastNames[utils.RandomIntn(len(mockLastNames))]

		createdAt := time.Now().AddDate(0, 0, -utils.RandomIntn(31))

		var status string
		switch r := utils.RandomIntn(10); {
		case r < 5:
			status = "pending"
		case r < 8:
			status = "approved"
		default:
			status = "rejected"
		}

		updatedAt := createdAt
		if status != "pending" {
			updatedAt = createdAt.AddDate(0, 0, 1+utils.RandomIntn(5))
		}

		applicants = append(applicants, Applicant{
			ID:                         uint(i),
			RegistrationNumber:         i,
			Name:                       firstName + " " + lastName,
			Email:                      mockEmail(firstName, lastName),
			PhoneNumber:                mockPhoneNumber(),
			NationalRegistrationNumber: mockNationalRegNumber(),
			School: School{
				Name:         mockSchoolNames[utils.RandomIntn(len(mockSchoolNames))],
				AverageGrade: float64(70 + utils.RandomIntn(31)),
			},
			PaymentConfirmation: PaymentConfirmation{
				ImageURL:   "uploads/paymentConfirmation-mock.png",
				UploadedAt: createdAt,
			},
			Essay:     mockEssay(),
			Status:    status,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		})
	}

	return applicants
}

// mockPhoneNumber builds a Mongolian-format phone number
func mockPhoneNumber() string {
	return fmt.Sprintf("+9769%d%06d", 1+utils.RandomIntn(9), 100000+utils.RandomIntn(900000))
}

func mockNationalRegNumber() string {
	return fmt.Sprintf("MN%08d", 10000000+utils.RandomIntn(90000000))
}

func mockEmail(firstName, lastName string) string {
	domain := mockEmailDomains[utils.RandomIntn(len(mockEmailDomains))]
	return strings.ToLower(firstName) + "." + strings.ToLower(lastName) + "@" + domain
}

// mockEssay joins enough distinct fragments to clear the minimum essay
// length accepted by the API
func mockEssay() string {
	count := 3 + utils.RandomIntn(3)
	seen := map[int]bool{}
	var parts []string

	for len(parts) < count {
		idx := utils.RandomIntn(len(mockEssayFragments))
		if seen[idx] {
			count--
			continue
		}
		seen[idx] = true
		parts = append(parts, mockEssayFragments[idx])
	}

	essay := strings.Join(parts, " ")
	for len(essay) < EssayMinLength {
		essay += " " + mockEssayFragments[utils.RandomIntn(len(mockEssayFragments))]
	}
	return essay
}
