/*
 * Copyright (c) 2026, Coverlane, Inc. (https://www.coverlane.io).
 *
 * Coverlane, Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package errors

const errorPrefix = "BAS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize document store client.",
	}

	ADD_AUTOMATION_RULE = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while adding automation rule.",
	}

	GET_AUTOMATION_RULE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while fetching automation rule(s).",
	}

	UPDATE_AUTOMATION_RULE = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while updating automation rule.",
	}

	DELETE_AUTOMATION_RULE = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while deleting automation rule.",
	}

	ADD_WORKFLOW_EVENT = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while persisting workflow event.",
	}

	FINALIZE_WORKFLOW_EVENT = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while finalizing workflow event.",
	}

	EXECUTE_ACTION = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while executing automation action.",
	}

	CHANGE_STREAM_OPEN = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while opening collection change stream.",
	}

	ADD_CLIENT = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while adding client.",
	}

	GET_CLIENT = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while fetching client(s).",
	}

	UPDATE_CLIENT = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while updating client.",
	}

	DELETE_CLIENT = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while deleting client.",
	}

	ADD_TASK = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Error while adding task.",
	}

	ADD_NOTIFICATION = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while adding notification.",
	}

	ADD_EMAIL_LOG = ErrorMessage{
		Code:    errorPrefix + "15016",
		Message: "Error while adding email log entry.",
	}

	ADD_DOCUMENT = ErrorMessage{
		Code:    errorPrefix + "15017",
		Message: "Error while adding generated document record.",
	}

	ADD_AI_REVIEW = ErrorMessage{
		Code:    errorPrefix + "15018",
		Message: "Error while adding AI review record.",
	}

	PATCH_ENTITY = ErrorMessage{
		Code:    errorPrefix + "15019",
		Message: "Error while patching entity document.",
	}

	GET_POLICY = ErrorMessage{
		Code:    errorPrefix + "15020",
		Message: "Error while fetching policies.",
	}

	GET_CLAIM = ErrorMessage{
		Code:    errorPrefix + "15021",
		Message: "Error while fetching claims.",
	}

	UPDATE_CLAIM = ErrorMessage{
		Code:    errorPrefix + "15022",
		Message: "Error while updating claim.",
	}

	GET_QUOTE = ErrorMessage{
		Code:    errorPrefix + "15023",
		Message: "Error while fetching quotes.",
	}

	ADD_QUOTE = ErrorMessage{
		Code:    errorPrefix + "15024",
		Message: "Error while adding quote.",
	}

	ADD_POLICY = ErrorMessage{
		Code:    errorPrefix + "15025",
		Message: "Error while adding policy.",
	}

	ADD_CLAIM = ErrorMessage{
		Code:    errorPrefix + "15026",
		Message: "Error while adding claim.",
	}

	GET_SETTINGS = ErrorMessage{
		Code:    errorPrefix + "15027",
		Message: "Error while fetching system settings.",
	}

	UPDATE_SETTINGS = ErrorMessage{
		Code:    errorPrefix + "15028",
		Message: "Error while updating system settings.",
	}

	GENERATED_TEXT_CALL = ErrorMessage{
		Code:    errorPrefix + "15029",
		Message: "Error while calling the generated-text service.",
	}

	GET_TASK = ErrorMessage{
		Code:    errorPrefix + "15030",
		Message: "Error while fetching tasks.",
	}

	GET_NOTIFICATION = ErrorMessage{
		Code:    errorPrefix + "15031",
		Message: "Error while fetching notifications.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "16001",
		Message: "Invalid request payload.",
	}

	RULE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "16002",
		Message: "Automation rule not found.",
	}

	INVALID_RULE_DEFINITION = ErrorMessage{
		Code:    errorPrefix + "16003",
		Message: "Automation rule definition is invalid.",
	}

	CLIENT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "16004",
		Message: "Client not found.",
	}

	FIELD_NOT_UPDATABLE = ErrorMessage{
		Code:    errorPrefix + "16005",
		Message: "Requested field cannot be updated.",
	}

	UNAUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "16006",
		Message: "Request is not authorized.",
	}

	POLICY_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "16007",
		Message: "Policy not found.",
	}

	CLAIM_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "16008",
		Message: "Claim not found.",
	}

	QUOTE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "16009",
		Message: "Quote not found.",
	}
)
