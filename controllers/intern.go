package controllers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"internship-management-api/services"
)

const maxUploadSize = int64(10 * 1024 * 1024) // 10MB per file

type InternController struct {
	projects    *services.ProjectService
	submissions *services.SubmissionService
	analytics   *services.AnalyticsService
}

func NewInternController(projects *services.ProjectService, submissions *services.SubmissionService, analytics *services.AnalyticsService) *InternController {
	return &InternController{projects: projects, submissions: submissions, analytics: analytics}
}

// GetMyProject returns the intern's assigned projects
func (ic *InternController) GetMyProject(c *gin.Context) {
	internID, _ := getCurrentUserID(c)

	projects, err := ic.projects.ListForIntern(internID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// SubmitWork accepts a multipart submission: one mandatory PDF plus up to
// three additional documents.
func (ic *InternController) SubmitWork(c *gin.Context) {
	internID, _ := getCurrentUserID(c)

	projectID, err := strconv.ParseUint(c.PostForm("project_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}
	title := c.PostForm("title")
	description := c.PostForm("description")

	pdf, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PDF is required"})
		return
	}
	if strings.ToLower(filepath.Ext(pdf.Filename)) != ".pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Primary document must be a PDF"})
		return
	}

	var extraDocs []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		extraDocs = form.File["additionalDocs"]
	}
	for _, doc := range append([]*multipart.FileHeader{pdf}, extraDocs...) {
		if doc.Size > maxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 10MB limit"})
			return
		}
	}

	internDir := strconv.FormatUint(uint64(internID), 10)
	if err := os.MkdirAll(filepath.Join(uploadPath(), internDir), os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		return
	}

	pdfPath, err := ic.saveUpload(c, pdf, internDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store PDF"})
		return
	}

	additionalPaths := make([]string, 0, len(extraDocs))
	for _, doc := range extraDocs {
		stored, err := ic.saveUpload(c, doc, internDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store additional document"})
			return
		}
		additionalPaths = append(additionalPaths, stored)
	}

	submission, err := ic.submissions.Create(services.CreateSubmissionInput{
		ProjectID:      uint(projectID),
		InternID:       internID,
		Title:          title,
		Description:    description,
		PDFPath:        pdfPath,
		AdditionalDocs: additionalPaths,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	message := "Submitted Successfully"
	if submission.IsLate {
		message = "Submitted (Late Submission)"
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    message,
		"submission": submission,
	})
}

// saveUpload stores one uploaded file under the intern's folder with a
// uuid-prefixed name and returns the path kept in the database.
func (ic *InternController) saveUpload(c *gin.Context, file *multipart.FileHeader, internDir string) (string, error) {
	name := uuid.NewString() + "_" + filepath.Base(file.Filename)
	relative := filepath.Join(internDir, name)
	if err := c.SaveUploadedFile(file, filepath.Join(uploadPath(), relative)); err != nil {
		return "", err
	}
	return relative, nil
}

func uploadPath() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}

// GetMySubmissions lists the intern's submissions in serial order
func (ic *InternController) GetMySubmissions(c *gin.Context) {
	internID, _ := getCurrentUserID(c)

	submissions, err := ic.submissions.ListForIntern(internID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// GetProgress returns the intern's progress tracker
func (ic *InternController) GetProgress(c *gin.Context) {
	internID, _ := getCurrentUserID(c)

	progress, err := ic.analytics.InternProgress(internID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
