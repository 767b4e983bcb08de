package scope

import "gorm.io/gorm"

// Owner restricts a query to rows belonging to one user.
func Owner(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// Department restricts a query to members of one department.
func Department(departmentID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("department_id = ?", departmentID)
	}
}

// Company restricts a query to rows of one company.
func Company(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
