package requisition

import "github.com/shopspring/decimal"

type CreateRequisitionRequest struct {
	Department         string          `json:"department" binding:"required"`
	Designation        string          `json:"designation" binding:"required"`
	EmploymentType     string          `json:"employment_type" binding:"required"`
	RequirementType    string          `json:"requirement_type" binding:"required,oneof='Ramp up' 'New Requirement' Replacement"`
	ProjectName        string          `json:"project_name"`
	Headcount          int             `json:"headcount" binding:"required,min=1"`
	JobDescription     string          `json:"job_description"`
	Education          string          `json:"education"`
	Experience         string          `json:"experience"`
	CTCMin             decimal.Decimal `json:"ctc_min"`
	CTCMax             decimal.Decimal `json:"ctc_max"`
	HiringTAT          string          `json:"hiring_tat" binding:"required,oneof=fastag normalCat1 normalCat2"`
	RequestorSignature string          `json:"requestor_signature"`
	RampUpFile         string          `json:"ramp_up_file"`
	SaveAsDraft        bool            `json:"save_as_draft"`
}

type UpdateRequisitionRequest struct {
	Department         string          `json:"department" binding:"required"`
	Designation        string          `json:"designation" binding:"required"`
	EmploymentType     string          `json:"employment_type" binding:"required"`
	RequirementType    string          `json:"requirement_type" binding:"required,oneof='Ramp up' 'New Requirement' Replacement"`
	ProjectName        string          `json:"project_name"`
	Headcount          int             `json:"headcount" binding:"required,min=1"`
	JobDescription     string          `json:"job_description"`
	Education          string          `json:"education"`
	Experience         string          `json:"experience"`
	CTCMin             decimal.Decimal `json:"ctc_min"`
	CTCMax             decimal.Decimal `json:"ctc_max"`
	HiringTAT          string          `json:"hiring_tat" binding:"required,oneof=fastag normalCat1 normalCat2"`
	RequestorSignature string          `json:"requestor_signature"`
	RampUpFile         string          `json:"ramp_up_file"`
}

type TransitionRequest struct {
	Role              string `json:"role" binding:"required,oneof=Director HR"`
	Status            string `json:"status" binding:"required"`
	Comment           string `json:"comment"`
	QueryText         string `json:"query_text"`
	DirectorSignature string `json:"director_signature"`
}

type ListFilter struct {
	Status    string `form:"status"`
	CreatedBy string `form:"created_by"`
}

type RequisitionResponse struct {
	ID                 string  `json:"id"`
	CompanyID          string  `json:"company_id"`
	MRFNumber          string  `json:"mrf_number"`
	CreatedBy          string  `json:"created_by"`
	Department         string  `json:"department"`
	Designation        string  `json:"designation"`
	EmploymentType     string  `json:"employment_type"`
	RequirementType    string  `json:"requirement_type"`
	ProjectName        string  `json:"project_name"`
	Headcount          int     `json:"headcount"`
	JobDescription     string  `json:"job_description"`
	Education          string  `json:"education"`
	Experience         string  `json:"experience"`
	CTCMin             string  `json:"ctc_min"`
	CTCMax             string  `json:"ctc_max"`
	HiringTAT          string  `json:"hiring_tat"`
	HiringTATDays      int     `json:"hiring_tat_days"`
	RequestorSignature string  `json:"requestor_signature,omitempty"`
	DirectorSignature  string  `json:"director_signature,omitempty"`
	RampUpFile         string  `json:"ramp_up_file,omitempty"`
	Status             string  `json:"status"`
	DirectorStatus     string  `json:"director_status"`
	HRStatus           string  `json:"hr_status"`
	DirectorComments   string  `json:"director_comments,omitempty"`
	HRComments         string  `json:"hr_comments,omitempty"`
	DirectorActionAt   *string `json:"director_action_at,omitempty"`
	HRActionAt         *string `json:"hr_action_at,omitempty"`
	Version            int     `json:"version"`
	CreatedAt          string  `json:"created_at,omitempty"`
	UpdatedAt          string  `json:"updated_at,omitempty"`
}

type QueryResponse struct {
	ID               string `json:"id"`
	RequisitionID    string `json:"requisition_id"`
	QueryName        string `json:"query_name"`
	QueryCreatedBy   string `json:"query_created_by"`
	QueryCreatedDate string `json:"query_created_date"`
	QueryCreatedTime string `json:"query_created_time"`
	QueryIsDelete    string `json:"query_is_delete"`
}
