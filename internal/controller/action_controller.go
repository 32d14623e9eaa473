package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/unistack-app/unistack/internal/apperr"
	"github.com/unistack-app/unistack/internal/auth"
	"github.com/unistack-app/unistack/internal/dto"
	"github.com/unistack-app/unistack/internal/service"
)

// ActionController is the single endpoint of the API. Read actions
// arrive as GET with the action in the query string, write actions as
// POST with a JSON body carrying the action name. Dispatch is a static
// map; adding an action means registering one more entry.
type ActionController struct {
	authSvc     service.AuthService
	questionSvc service.QuestionService
	answerSvc   service.AnswerService
	commentSvc  service.CommentService
	jwtSecret   []byte

	readActions  map[string]gin.HandlerFunc
	writeActions map[string]writeHandler
}

type writeHandler func(c *gin.Context, req *dto.ActionRequest)

func NewActionController(
	authSvc service.AuthService,
	questionSvc service.QuestionService,
	answerSvc service.AnswerService,
	commentSvc service.CommentService,
	jwtSecret []byte,
) *ActionController {
	ctrl := &ActionController{
		authSvc:     authSvc,
		questionSvc: questionSvc,
		answerSvc:   answerSvc,
		commentSvc:  commentSvc,
		jwtSecret:   jwtSecret,
	}

	ctrl.readActions = map[string]gin.HandlerFunc{
		"getQuestions": ctrl.getQuestions,
		"getAnswers":   ctrl.getAnswers,
		"getComments":  ctrl.getComments,
	}
	ctrl.writeActions = map[string]writeHandler{
		"login":              ctrl.login,
		"register":           ctrl.register,
		"submitQuestion":     ctrl.submitQuestion,
		"updateQuestion":     ctrl.updateQuestion,
		"deleteQuestion":     ctrl.deleteQuestion,
		"incrementViewCount": ctrl.incrementViewCount,
		"submitAnswer":       ctrl.submitAnswer,
		"updateAnswer":       ctrl.updateAnswer,
		"deleteAnswer":       ctrl.deleteAnswer,
		"acceptAnswer":       ctrl.acceptAnswer,
		"addComment":         ctrl.addComment,
		"deleteComment":      ctrl.deleteComment,
	}
	return ctrl
}

func (ctrl *ActionController) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/actions", ctrl.HandleRead)
	router.POST("/api/actions", ctrl.HandleWrite)

	// Alias kept for the legacy frontend, which still posts to the
	// old PHP path.
	router.GET("/server.php", ctrl.HandleRead)
	router.POST("/server.php", ctrl.HandleWrite)
}

// HandleRead godoc
// @Summary Dispatch a read action
// @Description Routes getQuestions/getAnswers/getComments by the action query parameter
// @Tags actions
// @Produce json
// @Param action query string true "Action name"
// @Success 200 {object} map[string]interface{}
// @Router /actions [get]
func (ctrl *ActionController) HandleRead(c *gin.Context) {
	action := c.Query("action")
	if action == "" {
		ctrl.fail(c, apperr.New(apperr.InvalidAction, "No action specified"))
		return
	}
	handler, ok := ctrl.readActions[action]
	if !ok {
		ctrl.fail(c, apperr.New(apperr.InvalidAction, "Invalid action"))
		return
	}
	handler(c)
}

// HandleWrite godoc
// @Summary Dispatch a write or auth action
// @Description Routes the action named in the JSON body to its handler
// @Tags actions
// @Accept json
// @Produce json
// @Param request body dto.ActionRequest true "Action payload"
// @Success 200 {object} map[string]interface{}
// @Failure 200 {object} dto.ErrorResponse
// @Router /actions [post]
func (ctrl *ActionController) HandleWrite(c *gin.Context) {
	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to decode action request")
		ctrl.fail(c, apperr.New(apperr.Validation, "Invalid request body"))
		return
	}
	if req.Action == "" {
		ctrl.fail(c, apperr.New(apperr.InvalidAction, "No action specified"))
		return
	}
	handler, ok := ctrl.writeActions[req.Action]
	if !ok {
		ctrl.fail(c, apperr.New(apperr.InvalidAction, "Invalid action"))
		return
	}
	handler(c, &req)
}

// callerID resolves the acting user. A valid bearer token always wins
// over the userId field the legacy clients put in the payload.
func (ctrl *ActionController) callerID(c *gin.Context, req *dto.ActionRequest) uint {
	header := c.GetHeader("Authorization")
	if len(ctrl.jwtSecret) > 0 && strings.HasPrefix(header, "Bearer ") {
		if id, err := auth.ParseUserID(strings.TrimPrefix(header, "Bearer "), ctrl.jwtSecret); err == nil {
			return id
		}
		log.Warn().Msg("Rejected invalid bearer token")
	}
	return req.UserID.Uint()
}

// Failures are reported in-body; the HTTP status stays 200 because
// the legacy clients only look at the success flag.
func (ctrl *ActionController) fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Action failed")
	}
	c.JSON(http.StatusOK, gin.H{
		"success": false,
		"code":    string(kind),
		"message": apperr.MessageOf(err),
	})
}

func (ctrl *ActionController) ok(c *gin.Context, extra gin.H) {
	payload := gin.H{"success": true}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

// --- auth actions ---

func (ctrl *ActionController) register(c *gin.Context, req *dto.ActionRequest) {
	resp, err := ctrl.authSvc.Register(req.Email, req.Password)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	out := gin.H{"message": "User registered successfully", "user": resp.User}
	if resp.Token != "" {
		out["token"] = resp.Token
	}
	ctrl.ok(c, out)
}

func (ctrl *ActionController) login(c *gin.Context, req *dto.ActionRequest) {
	resp, err := ctrl.authSvc.Login(req.Email, req.Password)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	out := gin.H{"user": resp.User}
	if resp.Token != "" {
		out["token"] = resp.Token
	}
	ctrl.ok(c, out)
}

// --- question actions ---

func (ctrl *ActionController) submitQuestion(c *gin.Context, req *dto.ActionRequest) {
	question, err := ctrl.questionSvc.Submit(ctrl.callerID(c, req), req.Title, req.Body, req.Tags)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{
		"message":    "Question submitted successfully",
		"questionId": question.ID,
		"question":   question,
	})
}

func (ctrl *ActionController) updateQuestion(c *gin.Context, req *dto.ActionRequest) {
	question, err := ctrl.questionSvc.Update(req.QuestionID.Uint(), ctrl.callerID(c, req), req.Title, req.Body, req.Tags)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{"message": "Question updated successfully", "question": question})
}

func (ctrl *ActionController) deleteQuestion(c *gin.Context, req *dto.ActionRequest) {
	if err := ctrl.questionSvc.Delete(req.QuestionID.Uint(), ctrl.callerID(c, req)); err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{"message": "Question deleted successfully"})
}

func (ctrl *ActionController) incrementViewCount(c *gin.Context, req *dto.ActionRequest) {
	if err := ctrl.questionSvc.IncrementViews(req.QuestionID.Uint()); err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{})
}

// --- answer actions ---

func (ctrl *ActionController) submitAnswer(c *gin.Context, req *dto.ActionRequest) {
	answer, err := ctrl.answerSvc.Submit(req.QuestionID.Uint(), ctrl.callerID(c, req), req.Body)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{"message": "Answer submitted successfully", "answer": answer})
}

func (ctrl *ActionController) updateAnswer(c *gin.Context, req *dto.ActionRequest) {
	answer, err := ctrl.answerSvc.Update(req.AnswerID.Uint(), ctrl.callerID(c, req), req.Body)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{"message": "Answer updated successfully", "answer": answer})
}

func (ctrl *ActionController) deleteAnswer(c *gin.Context, req *dto.ActionRequest) {
	if err := ctrl.answerSvc.Delete(req.AnswerID.Uint(), ctrl.callerID(c, req)); err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{"message": "Answer deleted successfully"})
}

func (ctrl *ActionController) acceptAnswer(c *gin.Context, req *dto.ActionRequest) {
	answer, err := ctrl.answerSvc.Accept(req.AnswerID.Uint(), ctrl.callerID(c, req))
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{"message": "Answer accepted", "answer": answer})
}

// --- comment actions ---

func (ctrl *ActionController) addComment(c *gin.Context, req *dto.ActionRequest) {
	comment, err := ctrl.commentSvc.Add(req.AnswerID.Uint(), ctrl.callerID(c, req), req.Body)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{"comment": comment})
}

func (ctrl *ActionController) deleteComment(c *gin.Context, req *dto.ActionRequest) {
	if err := ctrl.commentSvc.Delete(req.CommentID.Uint(), ctrl.callerID(c, req)); err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{"message": "Comment deleted successfully"})
}

// --- read actions ---

func (ctrl *ActionController) getQuestions(c *gin.Context) {
	var filter dto.QuestionFilter
	if v := c.Query("userId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			ctrl.fail(c, apperr.New(apperr.Validation, "Invalid userId format"))
			return
		}
		filter.OwnerID = uint(id)
	}
	filter.TagSubstring = c.Query("tag")
	filter.TextSearch = c.Query("search")
	filter.Sort = c.DefaultQuery("sort", "newest")

	questions, err := ctrl.questionSvc.List(filter)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{"count": len(questions), "questions": questions})
}

func (ctrl *ActionController) getAnswers(c *gin.Context) {
	questionID, err := queryID(c, "questionId")
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	answers, err := ctrl.answerSvc.List(questionID)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{"count": len(answers), "answers": answers})
}

func (ctrl *ActionController) getComments(c *gin.Context) {
	answerID, err := queryID(c, "answerId")
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	comments, err := ctrl.commentSvc.List(answerID)
	if err != nil {
		ctrl.fail(c, err)
		return
	}
	ctrl.ok(c, gin.H{"count": len(comments), "comments": comments})
}

func queryID(c *gin.Context, name string) (uint, error) {
	v := c.Query(name)
	if v == "" {
		return 0, apperr.New(apperr.Validation, name+" is required")
	}
	id, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, apperr.New(apperr.Validation, "Invalid "+name+" format")
	}
	return uint(id), nil
}
