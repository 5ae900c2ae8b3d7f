package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mtop_registry/internal/config"
	"mtop_registry/internal/models"
	"mtop_registry/internal/query"
	"mtop_registry/internal/resources"
	"mtop_registry/internal/stats"
)

type operatorInput struct {
	Fullname       string  `json:"fullname" binding:"required,max=255"`
	Address        string  `json:"address" binding:"required,max=500"`
	EmailAddress   string  `json:"email_address" binding:"required,email"`
	ContactNumber  string  `json:"contact_number" binding:"required,max=20"`
	DriverID       uint    `json:"driver_id" binding:"required"`
	MotorcycleID   uint    `json:"motorcycle_id" binding:"required"`
	MtopNumber     string  `json:"mtop_number" binding:"required,max=50"`
	TodaID         uint    `json:"toda_id" binding:"required"`
	DateRegistered string  `json:"date_registered" binding:"required"`
	DateLastPaid   *string `json:"date_last_paid"`
	PermitStatus   string  `json:"permit_status" binding:"required,oneof=new renew retire"`
}

type operatorLookup struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

// OperatorIndex serves the lookup lists the operator form's dropdowns need.
func OperatorIndex(c *gin.Context) {
	var drivers, motorcycles, todas []operatorLookup

	if err := errors.Join(
		config.DB.Model(&models.Driver{}).
			Select("id, driver_fullname AS label").Order("driver_fullname asc").Scan(&drivers).Error,
		config.DB.Model(&models.Motorcycle{}).
			Select("id, plate_number AS label").Order("plate_number asc").Scan(&motorcycles).Error,
		config.DB.Model(&models.Toda{}).
			Select("id, toda_name AS label").Order("toda_name asc").Scan(&todas).Error,
	); err != nil {
		logrus.WithError(err).Error("Failed to load operator form lookups")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load lookups."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"drivers":     drivers,
		"motorcycles": motorcycles,
		"toda":        todas,
	})
}

// ListOperators returns one page of operator permits. The search term also
// matches the linked driver's name, the motorcycle's plate and the TODA name.
func ListOperators(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	result, err := query.List[models.Operator](config.DB, query.Operators, params)
	if err != nil {
		respondListError(c, err)
		return
	}

	data := make([]resources.OperatorResource, 0, len(result.Items))
	for _, operator := range result.Items {
		data = append(data, resources.NewOperatorResource(operator))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": listMeta(result)})
}

func CreateOperator(c *gin.Context) {
	var input operatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	fieldErrs := map[string]string{}
	dateRegistered := parseDateField("date_registered", input.DateRegistered, false, fieldErrs)
	dateLastPaid := parseOptionalDateField("date_last_paid", input.DateLastPaid, fieldErrs)
	checkOperatorParents(&input, fieldErrs)
	if ok, err := operatorFieldTaken("email_address", input.EmailAddress, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create operator."})
		return
	} else if ok {
		fieldErrs["email_address"] = "This email address is already registered."
	}
	if ok, err := operatorFieldTaken("mtop_number", input.MtopNumber, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create operator."})
		return
	} else if ok {
		fieldErrs["mtop_number"] = "This MTOP number is already registered."
	}
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	operator := models.Operator{
		Fullname:       input.Fullname,
		Address:        input.Address,
		EmailAddress:   input.EmailAddress,
		ContactNumber:  input.ContactNumber,
		DriverID:       input.DriverID,
		MotorcycleID:   input.MotorcycleID,
		TodaID:         input.TodaID,
		MtopNumber:     input.MtopNumber,
		DateRegistered: dateRegistered,
		DateLastPaid:   dateLastPaid,
		PermitStatus:   input.PermitStatus,
	}
	if err := config.DB.Create(&operator).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "mtop_number", "This MTOP number or email address is already registered.")
			return
		}
		logrus.WithError(err).Error("Failed to create operator")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create operator."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Operator created successfully!",
		"operator": operator,
	})
}

func GetOperator(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var operator models.Operator
	if err := config.DB.
		Preload("Driver").
		Preload("Motorcycle").
		Preload("Toda").
		First(&operator, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Operator not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}
	c.JSON(http.StatusOK, operator)
}

func UpdateOperator(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var operator models.Operator
	if err := config.DB.First(&operator, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Operator not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	var input operatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	fieldErrs := map[string]string{}
	dateRegistered := parseDateField("date_registered", input.DateRegistered, false, fieldErrs)
	dateLastPaid := parseOptionalDateField("date_last_paid", input.DateLastPaid, fieldErrs)
	checkOperatorParents(&input, fieldErrs)
	if ok, err := operatorFieldTaken("email_address", input.EmailAddress, operator.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update operator."})
		return
	} else if ok {
		fieldErrs["email_address"] = "This email address is already registered."
	}
	if ok, err := operatorFieldTaken("mtop_number", input.MtopNumber, operator.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update operator."})
		return
	} else if ok {
		fieldErrs["mtop_number"] = "This MTOP number is already registered."
	}
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	operator.Fullname = input.Fullname
	operator.Address = input.Address
	operator.EmailAddress = input.EmailAddress
	operator.ContactNumber = input.ContactNumber
	operator.DriverID = input.DriverID
	operator.MotorcycleID = input.MotorcycleID
	operator.TodaID = input.TodaID
	operator.MtopNumber = input.MtopNumber
	operator.DateRegistered = dateRegistered
	operator.DateLastPaid = dateLastPaid
	operator.PermitStatus = input.PermitStatus

	if err := config.DB.Save(&operator).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "mtop_number", "This MTOP number or email address is already registered.")
			return
		}
		logrus.WithError(err).Error("Failed to update operator")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update operator."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Operator updated successfully!",
		"operator": operator,
	})
}

func DeleteOperator(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var operator models.Operator
	if err := config.DB.First(&operator, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Operator not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	if err := config.DB.Delete(&operator).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete operator")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete operator."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Operator deleted successfully."})
}

// OperatorStatistics summarizes the permit registry by status.
func OperatorStatistics(c *gin.Context) {
	total, err := stats.CountAll(config.DB, &models.Operator{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute statistics."})
		return
	}
	byStatus, err := stats.GroupByField(config.DB, &models.Operator{}, "permit_status")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute statistics."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_operators":  total,
		"by_permit_status": byStatus,
	})
}

// checkOperatorParents verifies the required parent references. All three
// must exist: a permit is meaningless without its driver, unit and TODA.
func checkOperatorParents(input *operatorInput, errs map[string]string) {
	check := func(id uint, model any, field, label string) {
		var count int64
		if err := config.DB.Model(model).Where("id = ?", id).Count(&count).Error; err != nil || count == 0 {
			errs[field] = "The selected " + label + " does not exist."
		}
	}
	check(input.DriverID, &models.Driver{}, "driver_id", "driver")
	check(input.MotorcycleID, &models.Motorcycle{}, "motorcycle_id", "motorcycle")
	check(input.TodaID, &models.Toda{}, "toda_id", "TODA")
}

func operatorFieldTaken(column, value string, excludeID uint) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Operator{}).
		Where(column+" = ? AND id <> ?", value, excludeID).
		Count(&count).Error
	return count > 0, err
}
