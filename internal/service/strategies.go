package service

import "github.com/preceelaChanu/Emotional-Support-AI-Chatbot/internal/domain"

// Coping strategy documents, one per emotion. No randomization at this level.
var copingStrategies = map[domain.EmotionLabel]string{
	domain.EmotionSadness: `Here are some gentle strategies that might help:

🌿 **Grounding Exercise**: Place your feet firmly on the ground. Notice the sensation. You are here, in this moment.

📝 **Journaling**: Write down three things you're feeling without judgment. Sometimes putting words to emotions helps process them.

🤗 **Self-Compassion**: Place your hand on your heart and say "This is hard, and it's okay to feel this way."

💬 **Reach Out**: Consider talking to a trusted friend, family member, or professional.`,

	domain.EmotionAnxiety: `Let's try some calming techniques together:

🌬️ **Box Breathing**: Breathe in for 4 counts, hold for 4, breathe out for 4, hold for 4. Repeat 4 times.

👁 **5-4-3-2-1 Grounding**: Name 5 things you see, 4 you can touch, 3 you can hear, 2 you can smell, 1 you can taste.

🧊 **Cold Water Technique**: Splash cold water on your face or hold an ice cube. This activates your dive reflex and slows your heart rate.

🚶 **Gentle Movement**: A short walk, even for 5 minutes, can help release anxious energy.`,

	domain.EmotionStress: `Here are some strategies to help manage overwhelm:

📋 **Brain Dump**: Write down everything on your mind. Getting it out of your head can provide relief.

🎯 **One Thing Focus**: Pick just ONE task for the next 30 minutes. Everything else can wait.

⏸️ **Permission to Pause**: Set a timer for 10 minutes and do absolutely nothing. Rest is productive.

🌳 **Nature Break**: If possible, step outside for fresh air. Even looking at nature through a window helps.`,

	domain.EmotionLoneliness: `Connection strategies that might help:

💬 **Reach Out**: Send a simple "thinking of you" message to someone. Small connections matter.

🌐 **Community**: Consider joining an online community around something you enjoy.

📱 **Video Call**: A face-to-face conversation, even virtual, can feel more connecting than text.

🐾 **Companion Time**: If you have a pet, spend some quality time with them. If not, watching animal videos can boost mood.`,

	domain.EmotionAnger: `Healthy ways to process anger:

🏃 **Physical Release**: Exercise, punch a pillow, or do jumping jacks to release the physical energy of anger.

📝 **Write It Out**: Write an angry letter you'll never send. Let it all out on paper.

⏰ **Time Out**: If in a conflict, say "I need 20 minutes to calm down before we continue."

🌊 **Cold Water**: Splash cold water on your face — it activates your parasympathetic nervous system.`,

	domain.EmotionFear: `Strategies to work through fear:

🌬️ **Breath Work**: Slow, deep breaths signal to your brain that you're safe. Try breathing out longer than you breathe in.

💭 **Name It**: Say "I notice I'm feeling fear." Naming emotions reduces their intensity.

📊 **Reality Check**: Ask yourself "What's the evidence for and against my feared outcome?"

👣 **Small Step**: If fear is blocking action, ask "What's the smallest possible step I could take?"`,

	domain.EmotionJoy: `Ways to savor positive emotions:

📸 **Capture It**: Take a photo or write about this moment to revisit later.

🙏 **Gratitude**: Take a moment to appreciate what's contributing to your happiness.

📢 **Share It**: Telling others about good news can amplify positive feelings.

🎉 **Celebrate**: Allow yourself to fully experience the joy without dismissing it.`,
}

// genericWellnessStrategy covers neutral, unset, and defensively any label
// outside the table.
const genericWellnessStrategy = `Here are some general wellness strategies:

🌬️ **Deep Breathing**: Take 5 slow, deep breaths.
🚶 **Movement**: A short walk can shift your state.
💧 **Hydrate**: Drink a glass of water.
🌿 **Nature**: Spend a few minutes outdoors if possible.`

// mentalHealthResources is the fixed referral block; content is maintained by
// hand, not generated.
const mentalHealthResources = `Here are some professional resources that can help:

📞 **Crisis Hotlines:**
• National Suicide Prevention Lifeline (US): 988 or 1-800-273-8255
• Crisis Text Line: Text HOME to 741741
• International Association for Suicide Prevention: https://www.iasp.info/resources/Crisis_Centres/

🌐 **Online Resources:**
• 7 Cups (Free Online Chat): https://www.7cups.com
• BetterHelp (Online Therapy): https://www.betterhelp.com
• Psychology Today Therapist Finder: https://www.psychologytoday.com/us/therapists

📱 **Mental Health Apps:**
• Calm - Meditation & Sleep
• Headspace - Mindfulness
• Woebot - AI Therapy Chatbot
• Daylio - Mood Tracking

📚 **Self-Help Resources:**
• NAMI (National Alliance on Mental Illness): https://www.nami.org
• Mind (UK): https://www.mind.org.uk
• Beyond Blue (Australia): https://www.beyondblue.org.au

Remember: Seeking professional help is a sign of strength, not weakness. You deserve support. 💙`

// SelectStrategy returns the coping document for the emotion, or the generic
// wellness document when none applies.
func (s *ResponseSelector) SelectStrategy(emotion domain.EmotionLabel) string {
	if strategy, ok := copingStrategies[emotion]; ok {
		return strategy
	}
	return genericWellnessStrategy
}

// Resources returns the fixed hotline and referral block.
func (s *ResponseSelector) Resources() string {
	return mentalHealthResources
}
