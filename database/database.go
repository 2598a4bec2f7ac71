package database

import (
	"gorm.io/gorm"
)

type Database struct {
	blogPostRepo     *BlogPostRepo
	agreementRepo    *AgreementRepo
	customerInfoRepo *CustomerInfoRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogPostRepo:     NewBlogPostRepo(db),
		agreementRepo:    NewAgreementRepo(db),
		customerInfoRepo: NewCustomerInfoRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) AgreementRepo() *AgreementRepo {
	return d.agreementRepo
}

func (d Database) CustomerInfoRepo() *CustomerInfoRepo {
	return d.customerInfoRepo
}
